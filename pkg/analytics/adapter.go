// Package analytics wraps the external reporting backend behind a small
// Provider interface and normalizes its loosely-shaped exports into the
// canonical snapshot type. The pipeline treats a missing provider or a
// nil snapshot as "proceed with zero analytics confidence", never as an
// error.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/kineticbrand/demandlab/internal/models"
)

// Provider supplies a normalized analytics snapshot for a workspace.
// A nil snapshot with a nil error means the backend is not configured.
type Provider interface {
	Snapshot(ctx context.Context, workspaceID string) (*models.AnalyticsSnapshot, error)
}

// RawSnapshot mirrors the reporting backend's export shape, including the
// legacy field aliases some older exports still carry. It exists only at
// this boundary; internal code sees the canonical AnalyticsSnapshot.
type RawSnapshot struct {
	TrafficMix       map[string]float64 `json:"traffic_mix"`
	Channels         []string           `json:"channels"`
	ConversionRate   *float64           `json:"conversion_rate"`
	PaidShare        *float64           `json:"paid_share"`
	PaidTrafficShare *float64           `json:"paid_traffic_share"` // legacy alias of paid_share
	SessionVolume    *int64             `json:"session_volume"`
	Sessions         *int64             `json:"sessions"` // legacy alias of session_volume
	Conversions      int64              `json:"conversions"`
}

// Normalize collapses legacy aliases and fills derivable fields. The
// canonical field wins when both an alias and the canonical name are set.
func Normalize(raw *RawSnapshot) *models.AnalyticsSnapshot {
	if raw == nil {
		return nil
	}
	snap := &models.AnalyticsSnapshot{
		TrafficMix:     raw.TrafficMix,
		Channels:       raw.Channels,
		ConversionRate: raw.ConversionRate,
		PaidShare:      raw.PaidShare,
		SessionVolume:  raw.SessionVolume,
		Conversions:    raw.Conversions,
	}
	if snap.PaidShare == nil {
		snap.PaidShare = raw.PaidTrafficShare
	}
	if snap.SessionVolume == nil {
		snap.SessionVolume = raw.Sessions
	}
	if snap.TrafficMix == nil {
		snap.TrafficMix = map[string]float64{}
	}
	if len(snap.Channels) == 0 && len(snap.TrafficMix) > 0 {
		snap.Channels = channelsByShare(snap.TrafficMix)
	}
	// Negative rates are upstream garbage; drop them rather than let
	// them skew scoring. Rates above 1.0 are kept and handled by the
	// funnel banding, which flags them as tracking noise.
	if snap.ConversionRate != nil && *snap.ConversionRate < 0 {
		snap.ConversionRate = nil
	}
	if snap.PaidShare != nil && *snap.PaidShare < 0 {
		snap.PaidShare = nil
	}
	return snap
}

func channelsByShare(mix map[string]float64) []string {
	channels := make([]string, 0, len(mix))
	for ch := range mix {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool {
		if mix[channels[i]] == mix[channels[j]] {
			return channels[i] < channels[j]
		}
		return mix[channels[i]] > mix[channels[j]]
	})
	return channels
}

// FileProvider reads a snapshot export from a JSON file, which lets the
// CLI run against a saved export instead of a live reporting backend.
type FileProvider struct {
	Path string
}

// Snapshot loads and normalizes the export. An empty path or a missing
// file means not configured.
func (p FileProvider) Snapshot(_ context.Context, _ string) (*models.AnalyticsSnapshot, error) {
	if p.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var raw RawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot file %s: %w", p.Path, err)
	}
	return Normalize(&raw), nil
}

// StaticProvider returns a fixed snapshot. Intended for tests and for
// embedding the pipeline with pre-fetched analytics.
type StaticProvider struct {
	Snap *models.AnalyticsSnapshot
}

func (p StaticProvider) Snapshot(_ context.Context, _ string) (*models.AnalyticsSnapshot, error) {
	return p.Snap, nil
}
