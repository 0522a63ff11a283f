// Package session coordinates a single editing session: it owns the
// current configuration, the undo/redo timeline, the price estimates,
// and the calls out to the geometry collaborator. All public methods are
// safe for concurrent use.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/geometry"
	"github.com/jewelify/design-engine/internal/history"
	"github.com/jewelify/design-engine/internal/pricing"
	"github.com/jewelify/design-engine/internal/prompt"
	"github.com/jewelify/design-engine/internal/store"
	"github.com/jewelify/design-engine/internal/survey"
)

// #region errors
var (
	// ErrEditInFlight is returned when a geometry-class edit arrives while
	// a previous one is still waiting on the collaborator.
	ErrEditInFlight = errors.New("geometry edit already in flight")

	// ErrUnrecognizedPrompt is returned when a free-text edit matched no
	// keyword in any category.
	ErrUnrecognizedPrompt = errors.New("prompt matched no known keywords")
)

// #endregion errors

// #region options
// Options wires a session's collaborators. Geometry is required; Store is
// optional persistence (nil keeps the session in memory only); a nil Rng
// gets a time-seeded source.
type Options struct {
	Geometry geometry.Service
	Store    *store.Store
	Rng      *rand.Rand
}

// #endregion options

// #region session-struct
// Session is the per-design coordinator. The configuration of record is
// always the current history snapshot; estimates are recomputed from it
// on every commit.
type Session struct {
	mu   sync.Mutex
	opts Options

	hist *history.History
	ids  []string // version ids aligned with history snapshots; empty strings without a store

	inFlight     bool
	lastGeometry geometry.Result
}

// #endregion session-struct

// #region constructors
// New starts a session from an already-normalized configuration.
func New(initial design.Config, opts Options) (*Session, error) {
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		opts: opts,
		hist: history.New(initial),
		ids:  []string{""},
	}

	if opts.Store != nil {
		rec, err := opts.Store.CreateInitialVersion(initial, initial.Label)
		if err != nil {
			return nil, fmt.Errorf("persist initial version: %w", err)
		}
		s.ids[0] = rec.VersionID
	}

	log.Printf("[SESSION] start design=%s material=%s style=%s price=%d",
		initial.Design, initial.Material, initial.Style, pricing.EstimatePrice(initial))
	return s, nil
}

// FromSurvey derives the starting configuration from completed survey
// answers and starts a session on it. The derivation result is returned
// so callers can surface the trace and the concept variants.
func FromSurvey(answers survey.Answers, opts Options) (*Session, survey.Result, error) {
	res, err := survey.Derive(answers)
	if err != nil {
		return nil, survey.Result{}, err
	}
	s, err := New(res.Config, opts)
	if err != nil {
		return nil, survey.Result{}, err
	}
	return s, res, nil
}

// #endregion constructors

// #region accessors
// Current returns the configuration of record.
func (s *Session) Current() design.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Current()
}

// Estimate returns the deterministic price and lead-time estimate for the
// current configuration.
func (s *Session) Estimate() (int, string) {
	cfg := s.Current()
	return pricing.EstimatePrice(cfg), pricing.EstimateDays(cfg)
}

// Breakdown returns the raw price line items for the current
// configuration.
func (s *Session) Breakdown() []pricing.LineItem {
	return pricing.Breakdown(s.Current())
}

// LastGeometry returns the most recent collaborator result, zero before
// the first geometry edit resolves.
func (s *Session) LastGeometry() geometry.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGeometry
}

// CanUndo reports whether an earlier snapshot exists.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanUndo()
}

// CanRedo reports whether a later snapshot exists.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanRedo()
}

// Concepts builds the three presentation variants of the current
// configuration.
func (s *Session) Concepts() []survey.Concept {
	return survey.Concepts(s.Current())
}

// Validate checks the current material/style/engraving combination
// against the manufacturability rules.
func (s *Session) Validate() geometry.Validation {
	cfg := s.Current()
	return geometry.ValidateMaterials(cfg.Material, cfg.Style, cfg.Engraving)
}

// #endregion accessors

// #region edit-classes
// geometryFields are the parameters whose change requires a model
// recomputation by the collaborator. Everything else applies instantly.
var geometryFields = map[design.Field]bool{
	design.FieldDesign:     true,
	design.FieldMaterial:   true,
	design.FieldStyle:      true,
	design.FieldStoneShape: true,
	design.FieldBandDesign: true,
	design.FieldEngraving:  true,
}

func needsGeometry(p design.Patch) bool {
	for _, f := range p.Fields() {
		if geometryFields[f] {
			return true
		}
	}
	return false
}

// #endregion edit-classes

// #region apply
// Apply commits a patch to the session. Instant patches commit
// synchronously; geometry-class patches first pass material validation and
// then block on the collaborator, with at most one geometry edit in flight
// at a time. On any failure the configuration of record is unchanged.
func (s *Session) Apply(ctx context.Context, trigger string, p design.Patch) (design.Config, error) {
	return s.apply(ctx, trigger, "", "", p)
}

func (s *Session) apply(ctx context.Context, trigger, part, promptText string, p design.Patch) (design.Config, error) {
	s.mu.Lock()

	current := s.hist.Current()
	curID := s.currentVersionID()
	if p.IsEmpty() {
		s.mu.Unlock()
		return current, nil
	}

	candidate := p.Apply(current)

	if !needsGeometry(p) {
		defer s.mu.Unlock()
		return s.commitLocked(trigger, part, promptText, p, candidate), nil
	}

	if s.inFlight {
		s.mu.Unlock()
		s.logEdit(curID, trigger, part, promptText, p, "reject", "geometry edit in flight")
		return current, ErrEditInFlight
	}

	if v := geometry.ValidateMaterials(candidate.Material, candidate.Style, candidate.Engraving); !v.Valid {
		s.mu.Unlock()
		s.logEdit(curID, trigger, part, promptText, p, "reject", v.Message)
		return current, fmt.Errorf("material validation: %s", v.Message)
	}

	s.inFlight = true
	s.mu.Unlock()

	res, err := s.opts.Geometry.UpdateGeometry(ctx, candidate)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.logEdit("", trigger, part, promptText, p, "reject", err.Error())
		log.Printf("[SESSION] geometry edit failed, keeping previous config: %v", err)
		return s.hist.Current(), err
	}

	s.lastGeometry = res
	if res.ModelPath != "" {
		candidate.ModelPath = res.ModelPath
	}
	return s.commitLocked(trigger, part, promptText, p, candidate), nil
}

// #endregion apply

// #region prompt-edits
// EditPrompt parses a free-text request against the whole configuration
// and commits whatever it matched. The parsed patch is returned alongside
// the new configuration so callers can echo what was understood.
func (s *Session) EditPrompt(ctx context.Context, text string) (design.Config, design.Patch, error) {
	p := prompt.Parse(text)
	if p.IsEmpty() {
		s.mu.Lock()
		current := s.hist.Current()
		curID := s.currentVersionID()
		s.mu.Unlock()
		s.logEdit(curID, "prompt", "", text, p, "no_op", "no keywords matched")
		return current, p, ErrUnrecognizedPrompt
	}
	cfg, err := s.apply(ctx, "prompt", "", text, p)
	return cfg, p, err
}

// EditPart parses a free-text request scoped to one part. When the prompt
// matches nothing relevant to that part, a randomized fallback keeps the
// interaction responsive instead of failing.
func (s *Session) EditPart(ctx context.Context, part prompt.Part, text string) (design.Config, design.Patch, error) {
	s.mu.Lock()
	current := s.hist.Current()
	p := prompt.RestrictForPart(prompt.Parse(text), part)
	if p.IsEmpty() {
		p = prompt.Fallback(part, current, s.opts.Rng)
		log.Printf("[SESSION] part=%s prompt matched nothing, using randomized fallback", part)
	}
	s.mu.Unlock()

	cfg, err := s.apply(ctx, "part", string(part), text, p)
	return cfg, p, err
}

// #endregion prompt-edits

// #region undo-redo
// Undo steps the timeline back one snapshot. At the initial snapshot it
// is a no-op.
func (s *Session) Undo() design.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hist.CanUndo() {
		return s.hist.Current()
	}
	cfg := s.hist.Undo()
	s.rollbackLocked("undo")
	return cfg
}

// Redo steps the timeline forward one snapshot. At the tail it is a
// no-op.
func (s *Session) Redo() design.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hist.CanRedo() {
		return s.hist.Current()
	}
	cfg := s.hist.Redo()
	s.rollbackLocked("redo")
	return cfg
}

func (s *Session) rollbackLocked(trigger string) {
	if s.opts.Store == nil {
		return
	}
	id := s.ids[s.hist.Index()]
	if id == "" {
		return
	}
	if err := s.opts.Store.Rollback(id); err != nil {
		log.Printf("[SESSION] failed to move active version: %v", err)
		return
	}
	if err := s.opts.Store.LogEdit(store.EditEntry{
		VersionID:   id,
		TriggerType: trigger,
		Decision:    "commit",
	}); err != nil {
		log.Printf("[SESSION] failed to log %s: %v", trigger, err)
	}
}

// #endregion undo-redo

// #region redesign
// Redesign abandons the current timeline: the configuration gets a
// randomized variation on every part, any keywords in the request are
// overlaid on top, and the history restarts from the result as its only
// snapshot. Geometry is recomputed because redesigns always change shape.
func (s *Session) Redesign(ctx context.Context, text string) (design.Config, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return s.hist.Current(), ErrEditInFlight
	}
	base := s.hist.Current()
	baseID := s.currentVersionID()

	cfg := base
	for _, part := range []prompt.Part{prompt.PartStone, prompt.PartBand, prompt.PartHead} {
		cfg = prompt.Fallback(part, cfg, s.opts.Rng).Apply(cfg)
	}

	overlay := prompt.Parse(text)
	cfg = overlay.Apply(cfg)
	if overlay.Material != nil {
		cfg = design.Normalize(cfg)
	}

	if v := geometry.ValidateMaterials(cfg.Material, cfg.Style, cfg.Engraving); !v.Valid {
		s.mu.Unlock()
		s.logEdit(baseID, "redesign", "", text, overlay, "reject", v.Message)
		return base, fmt.Errorf("material validation: %s", v.Message)
	}

	s.inFlight = true
	s.mu.Unlock()

	res, err := s.opts.Geometry.UpdateGeometry(ctx, cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.logEdit("", "redesign", "", text, overlay, "reject", err.Error())
		return s.hist.Current(), err
	}

	s.lastGeometry = res
	if res.ModelPath != "" {
		cfg.ModelPath = res.ModelPath
	}

	s.hist.Reset(cfg)
	s.ids = []string{""}
	if s.opts.Store != nil {
		rec := store.VersionRecord{
			VersionID: uuid.New().String(),
			Config:    cfg,
			Label:     cfg.Label,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.opts.Store.CommitVersion(rec); err != nil {
			log.Printf("[SESSION] failed to persist redesign: %v", err)
		} else {
			s.ids[0] = rec.VersionID
			s.logEdit(rec.VersionID, "redesign", "", text, overlay, "commit", "")
		}
	}

	log.Printf("[SESSION] redesign committed design=%s style=%s price=%d",
		cfg.Design, cfg.Style, pricing.EstimatePrice(cfg))
	return cfg, nil
}

// #endregion redesign

// #region commit
// commitLocked pushes the candidate onto the timeline, persists it, and
// logs the edit. Callers hold s.mu.
func (s *Session) commitLocked(trigger, part, promptText string, p design.Patch, cfg design.Config) design.Config {
	s.hist.Push(cfg)

	id := ""
	if s.opts.Store != nil {
		parent := s.ids[len(s.ids)-1]
		if idx := s.hist.Index() - 1; idx >= 0 && idx < len(s.ids) {
			parent = s.ids[idx]
		}
		rec := store.VersionRecord{
			VersionID: uuid.New().String(),
			ParentID:  parent,
			Config:    cfg,
			Label:     cfg.Label,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.opts.Store.CommitVersion(rec); err != nil {
			log.Printf("[SESSION] failed to persist version: %v", err)
		} else {
			id = rec.VersionID
		}
	}

	s.ids = append(s.ids[:s.hist.Index()], id)
	s.logEdit(id, trigger, part, promptText, p, "commit", "")

	log.Printf("[SESSION] commit trigger=%s fields=%v price=%d",
		trigger, p.Fields(), pricing.EstimatePrice(cfg))
	return cfg
}

// logEdit records an edit outcome when persistence is wired. Rejected and
// no-op edits are attributed to the version that was current at the time.
func (s *Session) logEdit(versionID, trigger, part, promptText string, p design.Patch, decision, reason string) {
	if s.opts.Store == nil {
		return
	}
	patchJSON, err := json.Marshal(p)
	if err != nil {
		patchJSON = nil
	}
	entry := store.EditEntry{
		VersionID:   versionID,
		TriggerType: trigger,
		Part:        part,
		Prompt:      promptText,
		PatchJSON:   string(patchJSON),
		Decision:    decision,
		Reason:      reason,
	}
	if entry.VersionID == "" {
		entry.VersionID = s.currentVersionID()
	}
	if entry.VersionID == "" {
		return
	}
	if err := s.opts.Store.LogEdit(entry); err != nil {
		log.Printf("[SESSION] failed to log edit: %v", err)
	}
}

func (s *Session) currentVersionID() string {
	if idx := s.hist.Index(); idx >= 0 && idx < len(s.ids) {
		return s.ids[idx]
	}
	return ""
}

// #endregion commit
