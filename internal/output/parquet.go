package output

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/chrisdamba/menuengine/internal/cloudwriter"
	"github.com/chrisdamba/menuengine/internal/models"
)

// HintRow is one item display hint flattened for columnar analysis.
type HintRow struct {
	RestaurantID         string `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Timestamp            int64  `parquet:"name=timestamp, type=INT64"`
	EngineMode           string `parquet:"name=engine_mode, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Fallback             bool   `parquet:"name=fallback, type=BOOLEAN"`
	ItemID               string `parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	DisplayTier          string `parquet:"name=display_tier, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Position             int32  `parquet:"name=position, type=INT32"`
	ShowImage            bool   `parquet:"name=show_image, type=BOOLEAN"`
	PriceDisplay         string `parquet:"name=price_display, type=BYTE_ARRAY, convertedtype=UTF8"`
	PriceModifierPercent int32  `parquet:"name=price_modifier_percent, type=INT32"`
	IsAnchor             bool   `parquet:"name=is_anchor, type=BOOLEAN"`
	SubGroup             string `parquet:"name=sub_group, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsLimitedToday       bool   `parquet:"name=is_limited_today, type=BOOLEAN"`
	BadgeText            string `parquet:"name=badge_text, type=BYTE_ARRAY, convertedtype=UTF8"`
	ScrollDepthHide      bool   `parquet:"name=scroll_depth_hide, type=BOOLEAN"`
	SuppressBadge        bool   `parquet:"name=suppress_badge, type=BOOLEAN"`
	MoodTags             string `parquet:"name=mood_tags, type=BYTE_ARRAY, convertedtype=UTF8"`
	UpsellCount          int32  `parquet:"name=upsell_count, type=INT32"`
	InBundle             bool   `parquet:"name=in_bundle, type=BOOLEAN"`
}

// HintRows flattens a result into rows sorted by item id.
func HintRows(result models.EngineResult) []HintRow {
	inBundle := make(map[string]bool)
	for _, b := range result.Output.Bundles {
		for _, id := range b.ItemIDs {
			inBundle[id] = true
		}
	}

	ids := make([]string, 0, len(result.Output.ItemHints))
	for id := range result.Output.ItemHints {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]HintRow, 0, len(ids))
	for _, id := range ids {
		h := result.Output.ItemHints[id]
		rows = append(rows, HintRow{
			RestaurantID:         result.RestaurantID,
			Timestamp:            result.Timestamp,
			EngineMode:           string(result.Output.EngineMode),
			Fallback:             result.Fallback,
			ItemID:               id,
			DisplayTier:          string(h.DisplayTier),
			Position:             int32(h.Position),
			ShowImage:            h.ShowImage,
			PriceDisplay:         h.PriceDisplay,
			PriceModifierPercent: int32(h.PriceModifierPercent),
			IsAnchor:             h.IsAnchor,
			SubGroup:             h.SubGroup,
			IsLimitedToday:       h.IsLimitedToday,
			BadgeText:            h.BadgeText,
			ScrollDepthHide:      h.ScrollDepthHide,
			SuppressBadge:        h.SuppressBadge,
			MoodTags:             strings.Join(h.MoodTags, ","),
			UpsellCount:          int32(len(result.Output.UpsellMap[id])),
			InBundle:             inBundle[id],
		})
	}
	return rows
}

// ParquetOutput writes hint rows to one parquet file per topic partition,
// locally or as objects in a store.
type ParquetOutput struct {
	ctx      context.Context
	basePath string
	folder   string
	mu       sync.Mutex
	writers  map[string]*writer.ParquetWriter
	files    map[string]source.ParquetFile
	store    cloudwriter.Store
}

// NewParquetOutput writes under basePath/folder, or to store when it is not
// nil. ctx bounds object uploads.
func NewParquetOutput(ctx context.Context, basePath, folder string, store cloudwriter.Store) *ParquetOutput {
	return &ParquetOutput{
		ctx:      ctx,
		basePath: basePath,
		folder:   folder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
		store:    store,
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	result, err := decodeResult(msg)
	if err != nil {
		return err
	}
	partition := partitionPath(result)
	writerKey := topic + "/" + partition

	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[writerKey]
	if !ok {
		pw, err = p.createNewWriter(writerKey, topic, partition)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	for _, row := range HintRows(result) {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write hint row: %w", err)
		}
	}
	return nil
}

func (p *ParquetOutput) createNewWriter(writerKey, topic, partition string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	if p.store != nil {
		key := path.Join(p.folder, topic, partition, "data.parquet")
		obj, err := p.store.Create(p.ctx, key, cloudwriter.ContentTypeParquet)
		if err != nil {
			return nil, fmt.Errorf("failed to create object %s: %w", key, err)
		}
		fw = NewCloudParquetFile(obj)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder, topic, filepath.FromSlash(partition))
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, new(HintRow), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	p.writers[writerKey] = pw
	p.files[writerKey] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			slog.Error("error closing parquet writer", "key", key, "error", err)
		}
		if f, ok := p.files[key]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				slog.Error("error closing parquet file", "key", key, "error", err)
			}
		}
		delete(p.writers, key)
		delete(p.files, key)
	}
	return lastErr
}
