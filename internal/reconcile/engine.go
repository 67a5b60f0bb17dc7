package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/recycling-sync/internal/model"
	"github.com/sells-group/recycling-sync/pkg/dashboard"
)

// Registry is the campaign-registry read surface the engine depends on.
type Registry interface {
	ActiveCampaigns(ctx context.Context) ([]model.Campaign, error)
	AssignedCities(ctx context.Context, campaignID int64) ([]model.GeoTarget, error)
	ClaimedCities(ctx context.Context, campaignID int64) ([]model.GeoTarget, error)
}

// Tracker is the tracker-store surface the engine depends on.
type Tracker interface {
	ExistingBatchCount(ctx context.Context, campaignID int64, baseName string) (int, error)
	UpdateBatchName(ctx context.Context, batchID, name string) error
}

// Status tags the planning result for a single campaign.
type Status int

const (
	// StatusPlanned means the campaign produced batch plans.
	StatusPlanned Status = iota + 1
	// StatusSkipped means the campaign produced no plans this run.
	StatusSkipped
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the per-campaign planning result. Skips are data conditions,
// not errors: the run continues with the next campaign. Store and network
// failures are returned as errors instead and abort the whole run.
type Outcome struct {
	Campaign model.Campaign
	Status   Status
	Reason   string            // set when skipped
	Plans    []model.BatchPlan // set when planned
}

// Summary aggregates one full reconciliation run. Created counts submitted
// batches; Skipped counts campaigns, not parts.
type Summary struct {
	RunID     string
	Campaigns int
	Created   int
	Skipped   int
	DryRun    bool
}

// Config tunes engine behavior.
type Config struct {
	// Categories is the ordered business-category catalog to expand
	// targets against.
	Categories []string

	// Pause is the delay between successive batch submissions of one
	// campaign. Not applied after the last submission.
	Pause time.Duration

	// DryRun plans every campaign but submits nothing and mutates no
	// store.
	DryRun bool
}

// Engine reconciles the campaign registry against the tracker, one campaign
// at a time. There is no parallelism and no retry: any store or dashboard
// error aborts the run, and re-running the whole process is the recovery
// path. The existing-work pre-check keeps re-runs from duplicating orders;
// two overlapping runs can still race past it (no cross-store transaction
// exists to close that window).
type Engine struct {
	registry   Registry
	tracker    Tracker
	dashboard  dashboard.Client
	categories []string
	pause      time.Duration
	dryRun     bool

	sleep func(time.Duration)
}

// New creates an Engine.
func New(reg Registry, trk Tracker, dash dashboard.Client, cfg Config) *Engine {
	return &Engine{
		registry:   reg,
		tracker:    trk,
		dashboard:  dash,
		categories: cfg.Categories,
		pause:      cfg.Pause,
		dryRun:     cfg.DryRun,
		sleep:      time.Sleep,
	}
}

// Run processes every active family campaign in id order and returns the run
// summary. A nil error means the run completed, even if zero campaigns were
// found.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID), zap.Bool("dry_run", e.dryRun))

	campaigns, err := e.registry.ActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("reconciliation started", zap.Int("campaigns", len(campaigns)))

	sum := &Summary{RunID: runID, Campaigns: len(campaigns), DryRun: e.dryRun}
	for _, c := range campaigns {
		out, err := e.plan(ctx, c)
		if err != nil {
			return nil, err
		}

		if out.Status == StatusSkipped {
			sum.Skipped++
			log.Info("campaign skipped",
				zap.Int64("campaign_id", c.ID),
				zap.String("campaign", c.Name),
				zap.String("reason", out.Reason),
			)
			continue
		}

		if e.dryRun {
			for _, p := range out.Plans {
				log.Info("would create batch",
					zap.Int64("campaign_id", c.ID),
					zap.String("name", p.Name),
					zap.Int("queries", len(p.Queries)),
					zap.Strings("regions", p.TargetRegions),
				)
			}
			continue
		}

		created, err := e.submit(ctx, out, log)
		sum.Created += created
		if err != nil {
			return nil, err
		}
	}

	log.Info("reconciliation complete",
		zap.Int("campaigns", sum.Campaigns),
		zap.Int("created", sum.Created),
		zap.Int("skipped", sum.Skipped),
	)
	return sum, nil
}

// plan runs the per-campaign pipeline up to (but not including) submission:
// existing-work check, target resolution, query planning.
func (e *Engine) plan(ctx context.Context, c model.Campaign) (*Outcome, error) {
	count, err := e.tracker.ExistingBatchCount(ctx, c.ID, c.Name)
	if err != nil {
		return nil, eris.Wrapf(err, "reconcile: existing-work check for campaign %d", c.ID)
	}
	if count > 0 {
		return &Outcome{
			Campaign: c,
			Status:   StatusSkipped,
			Reason:   fmt.Sprintf("%d existing batches", count),
		}, nil
	}

	targets, err := e.resolveTargets(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return &Outcome{Campaign: c, Status: StatusSkipped, Reason: "no targets configured"}, nil
	}

	return &Outcome{
		Campaign: c,
		Status:   StatusPlanned,
		Plans:    BuildPlans(c, targets, e.categories),
	}, nil
}

// resolveTargets fetches the campaign's raw target rows. The first-class
// assignment table wins outright when it has any rows; the legacy
// ownership-claim table is consulted only when it has none. The two sources
// are never merged.
func (e *Engine) resolveTargets(ctx context.Context, c model.Campaign) ([]model.GeoTarget, error) {
	raw, err := e.registry.AssignedCities(ctx, c.ID)
	if err != nil {
		return nil, eris.Wrapf(err, "reconcile: resolve targets for campaign %d", c.ID)
	}
	if len(raw) == 0 {
		raw, err = e.registry.ClaimedCities(ctx, c.ID)
		if err != nil {
			return nil, eris.Wrapf(err, "reconcile: resolve legacy targets for campaign %d", c.ID)
		}
	}
	return ResolveTargets(raw), nil
}

// submit sends the campaign's plans to the dashboard in order. Multi-part
// campaigns get a tracker-side correction after each creation so the stored
// display name collapses back to the base name; the suffixed name exists
// only in the creation request. Returns how many batches were created before
// any failure.
func (e *Engine) submit(ctx context.Context, out *Outcome, log *zap.Logger) (int, error) {
	multi := len(out.Plans) > 1
	created := 0
	for i, p := range out.Plans {
		if i > 0 {
			e.sleep(e.pause)
		}

		resp, err := e.dashboard.CreateBatch(ctx, dashboard.CreateBatchRequest{
			Name:                    p.Name,
			Queries:                 p.Queries,
			AutoImport:              true,
			TargetStates:            p.TargetRegions,
			LeadRecyclingCampaignID: p.SourceCampaignID,
		})
		if err != nil {
			return created, eris.Wrapf(err, "reconcile: submit batch %q", p.Name)
		}
		created++

		if multi {
			if err := e.tracker.UpdateBatchName(ctx, resp.BatchID, out.Campaign.Name); err != nil {
				return created, eris.Wrapf(err, "reconcile: correct name of batch %s", resp.BatchID)
			}
		}

		log.Info("batch created",
			zap.Int64("campaign_id", out.Campaign.ID),
			zap.String("batch_id", resp.BatchID),
			zap.String("name", p.Name),
			zap.Int("queries", len(p.Queries)),
		)
	}
	return created, nil
}
