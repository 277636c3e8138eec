package cmd

import (
	"context"
	"math/rand/v2"

	"github.com/voidtraders/voidtrade/internal/iofleet"
	"github.com/voidtraders/voidtrade/internal/iomarket"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/internal/iotrade"
	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/market"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// session wires the game core around one open save file.
type session struct {
	store  *iostore.Store
	market *iomarket.Market
	fleet  *iofleet.Fleet
	trader *iotrade.Trader
}

// openSession opens the save slot selected with --save. The save must
// already exist; "voidtrade new" creates it.
func openSession(ctx context.Context) (*session, error) {
	path := config.SaveFilePath(homeDir, saveName)
	st, err := iostore.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return newSession(st), nil
}

func newSession(st *iostore.Store) *session {
	pricer := market.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	fleet := iofleet.New(st)
	return &session{
		store:  st,
		market: iomarket.New(st, pricer, &terminalPublisher{}),
		fleet:  fleet,
		trader: iotrade.New(st, fleet),
	}
}

func (s *session) Close() error {
	return s.store.Close()
}

// ship returns the player's ship with class, parts, cargo and
// location loaded.
func (s *session) ship(ctx context.Context) (*schema.Ship, error) {
	var row schema.Ship
	err := s.store.DB().WithContext(ctx).
		Select("id").First(&row).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return s.fleet.Ship(ctx, row.ID)
}

func (s *session) player(ctx context.Context) (*schema.Player, error) {
	var player schema.Player
	err := s.store.DB().WithContext(ctx).First(&player).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return &player, nil
}
