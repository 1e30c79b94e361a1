package workflows

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
)

// ProfileEditor holds a caller's local copy of their profile between Load and
// Save. Edits stay local until Save succeeds.
type ProfileEditor struct {
	svc services.ProfileService
	log logrus.FieldLogger
	id  models.Identity

	busy atomic.Bool

	mu      sync.Mutex
	profile *models.Profile
	load    LoadStatus
	save    SaveStatus

	// OnSaved runs after a successful save, with the persisted copy.
	OnSaved func(*models.Profile)
}

func NewProfileEditor(svc services.ProfileService, id models.Identity, log logrus.FieldLogger) *ProfileEditor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProfileEditor{
		svc:  svc,
		id:   id,
		log:  log.WithField("user_id", id.UserID),
		load: LoadStatus{State: Loading},
		save: SaveStatus{State: SaveIdle},
	}
}

func (e *ProfileEditor) Load(ctx context.Context) (*models.Profile, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	e.setLoad(LoadStatus{State: Loading})
	p, err := e.svc.Load(ctx, e.id)
	if err != nil {
		e.log.WithError(err).Error("profile load failed")
		e.setLoad(LoadStatus{State: NotFound, Message: utils.Cause(err)})
		return nil, err
	}

	e.mu.Lock()
	e.profile = p
	e.load = LoadStatus{State: Loaded}
	e.mu.Unlock()
	return p.Clone(), nil
}

// Profile returns a copy of the local profile, or nil before Load succeeds.
func (e *ProfileEditor) Profile() *models.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.profile == nil {
		return nil
	}
	return e.profile.Clone()
}

func (e *ProfileEditor) LoadStatus() LoadStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load
}

func (e *ProfileEditor) SaveStatus() SaveStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.save
}

func (e *ProfileEditor) AddSkill(candidate string) bool {
	added := false
	e.edit(func(p *models.Profile) { added = p.AddSkill(candidate) })
	return added
}

func (e *ProfileEditor) RemoveSkill(skill string) bool {
	removed := false
	e.edit(func(p *models.Profile) { removed = p.RemoveSkill(skill) })
	return removed
}

// Update applies fn to the local profile. It is a no-op before Load.
func (e *ProfileEditor) Update(fn func(p *models.Profile)) {
	e.edit(fn)
}

func (e *ProfileEditor) edit(fn func(p *models.Profile)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.profile != nil {
		fn(e.profile)
	}
}

// Save pushes the local profile to the store. On failure the local edits are
// kept and the save status carries the store's message.
func (e *ProfileEditor) Save(ctx context.Context) error {
	const op = "ProfileEditor.Save"

	e.mu.Lock()
	if e.profile == nil {
		e.mu.Unlock()
		return utils.E(utils.CodeInvalidArgument, op, "profile is not loaded", nil)
	}
	draft := e.profile.Clone()
	e.mu.Unlock()

	draft.FullName = strings.TrimSpace(draft.FullName)
	if draft.FullName == "" {
		err := utils.E(utils.CodeInvalidArgument, op, "full_name is required", nil)
		e.setSave(SaveStatus{State: SaveFailed, Message: "full_name is required"})
		return err
	}

	if !e.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer e.busy.Store(false)

	e.setSave(SaveStatus{State: Saving})
	if err := e.svc.Save(ctx, e.id.UserID, draft); err != nil {
		e.log.WithError(err).Error("profile save failed")
		e.setSave(SaveStatus{State: SaveFailed, Message: utils.Cause(err)})
		return err
	}

	// Edits made while the save was in flight stay on the local copy.
	e.mu.Lock()
	e.profile.UpdatedAt = draft.UpdatedAt
	if strings.TrimSpace(e.profile.FullName) == draft.FullName {
		e.profile.FullName = draft.FullName
	}
	e.save = SaveStatus{State: SaveIdle}
	cb := e.OnSaved
	e.mu.Unlock()

	e.log.Info("profile saved")
	if cb != nil {
		cb(draft.Clone())
	}
	return nil
}

func (e *ProfileEditor) setLoad(s LoadStatus) {
	e.mu.Lock()
	e.load = s
	e.mu.Unlock()
}

func (e *ProfileEditor) setSave(s SaveStatus) {
	e.mu.Lock()
	e.save = s
	e.mu.Unlock()
}
