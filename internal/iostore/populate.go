package iostore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// populate fills all definition tables from the bundle and creates one
// priceless commodity row per (definition x location) pair. It runs in
// a single transaction: a failed population leaves no partial save.
func (s *Store) populate(ctx context.Context, bundle *content.Bundle) error {
	start := time.Now()

	total := len(bundle.Systems) + len(bundle.Commodities) +
		len(bundle.Ships) + len(bundle.Properties) +
		len(bundle.Parts) + len(bundle.Events)
	bar := newProgressBar(total, "Populating save: ")
	defer bar.Finish()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locationIDs, err := populateSystems(tx, bundle.Systems, bar)
		if err != nil {
			return err
		}
		defIDs, err := populateCommodities(tx, bundle.Commodities, bar)
		if err != nil {
			return err
		}
		if err := populateBase(tx, bundle, bar); err != nil {
			return err
		}
		if err := crossCommodities(tx, defIDs, locationIDs); err != nil {
			return err
		}
		return populateSaveInfo(tx, bundle)
	})
	if err != nil {
		return PopulateError(err)
	}

	slog.Info("Populated save file",
		"path", s.path,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func populateSystems(
	tx *gorm.DB,
	systems []content.SystemDef,
	bar *pb.ProgressBar,
) ([]uint, error) {
	var locationIDs []uint

	for _, sys := range systems {
		sysRow := schema.System{Name: sys.Name}
		if err := tx.Create(&sysRow).Error; err != nil {
			return nil, err
		}

		celIDs := make(map[string]uint, len(sys.Celestials))
		for _, cel := range sys.Celestials {
			celRow := schema.Celestial{
				SystemID: sysRow.ID,
				Name:     cel.Name,
				Orbit:    cel.Orbit,
				Kind:     cel.Kind,
			}
			if err := tx.Create(&celRow).Error; err != nil {
				return nil, err
			}
			celIDs[cel.Name] = celRow.ID
		}

		for _, loc := range sys.Locations {
			locRow := schema.Location{
				Name:        loc.Name,
				Kind:        loc.Kind,
				CelestialID: celIDs[loc.Celestial],
			}
			if err := tx.Create(&locRow).Error; err != nil {
				return nil, err
			}
			locationIDs = append(locationIDs, locRow.ID)
		}
		bar.Increment()
	}

	return locationIDs, nil
}

func populateCommodities(
	tx *gorm.DB,
	defs []content.CommodityDef,
	bar *pb.ProgressBar,
) ([]uint, error) {
	var ids []uint
	for _, def := range defs {
		row := schema.CommodityDef{
			Name:         def.Name,
			MeanPrice:    def.MeanPrice,
			StdDev:       def.StdDev,
			Depreciation: def.Depreciation,
			Volume:       def.Volume,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		for _, tag := range def.Categories {
			cat := schema.CommodityCategory{
				CommodityDefID: row.ID,
				Tag:            tag,
			}
			if err := tx.Create(&cat).Error; err != nil {
				return nil, err
			}
		}
		ids = append(ids, row.ID)
		bar.Increment()
	}
	return ids, nil
}

func populateBase(
	tx *gorm.DB,
	bundle *content.Bundle,
	bar *pb.ProgressBar,
) error {
	for _, ship := range bundle.Ships {
		row := schema.ShipClassDef{
			Name:         ship.Name,
			MeanPrice:    ship.MeanPrice,
			StdDev:       ship.StdDev,
			Depreciation: ship.Depreciation,
			Storage:      ship.Storage,
			WeaponMounts: ship.WeaponMounts,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		bar.Increment()
	}

	for _, prop := range bundle.Properties {
		row := schema.PropertyDef{
			Name:         prop.Name,
			MeanPrice:    prop.MeanPrice,
			StdDev:       prop.StdDev,
			Depreciation: prop.Depreciation,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		bar.Increment()
	}

	for _, part := range bundle.Parts {
		row := schema.ShipPartDef{
			Name:         part.Name,
			MeanPrice:    part.MeanPrice,
			StdDev:       part.StdDev,
			Depreciation: part.Depreciation,
			Volume:       part.Volume,
			Storage:      part.Storage,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		bar.Increment()
	}

	for _, ev := range bundle.Events {
		row := schema.EventDef{
			Name:       ev.Name,
			Kind:       ev.Kind,
			Message:    ev.Message,
			Adjustment: ev.Adjustment,
			Position:   ev.Position,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for i, cond := range ev.Affects {
			condRow := schema.EventCondition{
				EventDefID: row.ID,
				Ordinal:    i,
			}
			if err := tx.Create(&condRow).Error; err != nil {
				return err
			}
			for _, tag := range cond {
				tagRow := schema.EventConditionTag{
					EventConditionID: condRow.ID,
					Tag:              tag,
				}
				if err := tx.Create(&tagRow).Error; err != nil {
					return err
				}
			}
		}
		bar.Increment()
	}

	return nil
}

// crossCommodities creates the initial commodity instance rows: one
// per (definition, location) pair, price unassigned until the first
// market recalculation.
func crossCommodities(tx *gorm.DB, defIDs, locationIDs []uint) error {
	for _, locID := range locationIDs {
		for _, defID := range defIDs {
			row := schema.Commodity{
				CommodityDefID: defID,
				LocationID:     locID,
				Price:          sql.NullInt64{},
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func populateSaveInfo(tx *gorm.DB, bundle *content.Bundle) error {
	fp, err := fingerprint(bundle)
	if err != nil {
		return err
	}
	info := schema.SaveInfo{
		PlaythroughID:      uuid.NewString(),
		ContentFingerprint: fp,
		CreatedAt:          time.Now(),
	}
	return tx.Create(&info).Error
}

// fingerprint derives a stable UUID v5 from the canonical bundle
// serialization. It identifies which content a save was built from, so
// a future migration can detect content/save mismatches.
func fingerprint(bundle *content.Bundle) (string, error) {
	data, err := yaml.Marshal(bundle)
	if err != nil {
		return "", err
	}
	return gnuuid.New(string(data)).String(), nil
}
