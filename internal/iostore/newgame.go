package iostore

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// NewGame creates the game-start rows of a fresh save: the world row
// with its tick at zero, the player with the configured cash and one
// ship of the configured class, docked at the first known location.
// When no starting ship class is configured the lowest-priced class
// is used.
func (s *Store) NewGame(
	ctx context.Context,
	playerName string,
	game config.GameConfig,
) (*schema.Player, *schema.Ship, error) {
	db := s.db.WithContext(ctx)

	class, err := s.startingClass(ctx, game.StartingShip)
	if err != nil {
		return nil, nil, err
	}

	var loc schema.Location
	if err = db.Order("id").First(&loc).Error; err != nil {
		return nil, nil, QueryError(err)
	}

	player := schema.Player{
		Name: content.Normalize(playerName),
		Cash: game.StartingCash,
	}
	ship := schema.Ship{
		Name:       class.Name,
		Condition:  100,
		LocationID: loc.ID,
		ClassDefID: class.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		world := schema.World{Tick: 0}
		if err := tx.Create(&world).Error; err != nil {
			return err
		}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}
		ship.PlayerID = player.ID
		return tx.Create(&ship).Error
	})
	if err != nil {
		return nil, nil, QueryError(err)
	}

	slog.Info("Created new game",
		"player", player.Name, "ship", ship.Name, "location", loc.Name)
	return &player, &ship, nil
}

func (s *Store) startingClass(
	ctx context.Context,
	name string,
) (*schema.ShipClassDef, error) {
	db := s.db.WithContext(ctx)
	var class schema.ShipClassDef

	if name == "" {
		if err := db.Order("mean_price").First(&class).Error; err != nil {
			return nil, QueryError(err)
		}
		return &class, nil
	}

	err := db.Where("name = ?", content.Normalize(name)).First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnknownShipError(name)
	}
	if err != nil {
		return nil, QueryError(err)
	}
	return &class, nil
}
