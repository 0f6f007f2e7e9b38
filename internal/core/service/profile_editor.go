package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
	"github.com/tipulim/directory-web/internal/pkg/requestid"
	"github.com/tipulim/directory-web/pkg/logger"
)

// SaveFallbackMessage is shown when a field save fails without a server reason.
const SaveFallbackMessage = "Could not save the change. Please try again."

// ProfileEditor implements ports.ProfileEditor on top of the backend, the
// session and the page store.
type ProfileEditor struct {
	api      ports.UsersAPI
	sessions ports.SessionService
	pages    ports.PageStore
	audit    ports.EditRecorder
	log      zerolog.Logger
}

func NewProfileEditor(
	api ports.UsersAPI,
	sessions ports.SessionService,
	pages ports.PageStore,
	audit ports.EditRecorder,
	log zerolog.Logger,
) *ProfileEditor {
	return &ProfileEditor{
		api:      api,
		sessions: sessions,
		pages:    pages,
		audit:    audit,
		log:      log,
	}
}

// Mount runs the access guard and, when it passes, the bearer-authenticated
// GET. The guard never touches the network.
func (e *ProfileEditor) Mount(ctx context.Context, sessionID string, sess domain.Session, id domain.UserID) ports.MountResult {
	page := domain.NewProfilePage(id)
	log := logger.ForRequest(ctx, e.log)

	if !sess.CanAccessProfile(page.ProfileID) {
		_ = page.Deny()
		log.Warn().
			Str("profile_id", page.ProfileID.String()).
			Bool("logged_in", sess.IsLoggedIn()).
			Msg("unauthorized profile access attempt")
		return ports.MountResult{Outcome: ports.MountUnauthorized, Page: page, Err: domain.ErrUnauthorized}
	}

	_ = page.StartLoading()
	profile, err := e.api.GetProfile(ctx, sess.Token(), page.ProfileID)
	if err != nil {
		_ = page.Fail()
		log.Error().Err(err).Str("profile_id", page.ProfileID.String()).Msg("error fetching profile")
		// a page from an earlier mount must not keep accepting edits
		if delErr := e.pages.Delete(ctx, sessionID, page.ProfileID); delErr != nil {
			log.Warn().Err(delErr).Str("profile_id", page.ProfileID.String()).Msg("failed to drop page state")
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			if clearErr := e.sessions.Clear(ctx, sessionID); clearErr != nil {
				log.Warn().Err(clearErr).Msg("failed to clear rejected session")
			}
		}
		return ports.MountResult{Outcome: ports.MountError, Page: page, Err: err}
	}

	if err := page.Load(profile); err != nil {
		return ports.MountResult{Outcome: ports.MountError, Page: page, Err: err}
	}
	if err := e.pages.Save(ctx, sessionID, page); err != nil {
		log.Error().Err(err).Str("profile_id", page.ProfileID.String()).Msg("failed to store page state")
		return ports.MountResult{Outcome: ports.MountError, Page: page, Err: err}
	}

	return ports.MountResult{Outcome: ports.MountLoaded, Page: page}
}

// Page returns the mounted page state.
func (e *ProfileEditor) Page(ctx context.Context, sessionID string, id domain.UserID) (*domain.ProfilePage, error) {
	return e.pages.Load(ctx, sessionID, id)
}

func (e *ProfileEditor) BeginEdit(ctx context.Context, sessionID string, id domain.UserID, field domain.Field) (*domain.ProfilePage, error) {
	return e.pages.Update(ctx, sessionID, id, func(p *domain.ProfilePage) error {
		return p.BeginEdit(field)
	})
}

func (e *ProfileEditor) Input(ctx context.Context, sessionID string, id domain.UserID, value string) (*domain.ProfilePage, error) {
	return e.pages.Update(ctx, sessionID, id, func(p *domain.ProfilePage) error {
		return p.Input(value)
	})
}

func (e *ProfileEditor) Cancel(ctx context.Context, sessionID string, id domain.UserID) (*domain.ProfilePage, error) {
	return e.pages.Update(ctx, sessionID, id, func(p *domain.ProfilePage) error {
		p.Cancel()
		return nil
	})
}

// Save sends {field: buffer} to the backend and folds the answer back into
// the page, unless the page moved on in the meantime (ErrStaleResponse).
func (e *ProfileEditor) Save(ctx context.Context, sessionID string, sess domain.Session, id domain.UserID, value *string) (*domain.ProfilePage, error) {
	log := logger.ForRequest(ctx, e.log)
	var pending domain.PendingSave
	page, err := e.pages.Update(ctx, sessionID, id, func(p *domain.ProfilePage) error {
		if value != nil {
			if err := p.Input(*value); err != nil {
				return err
			}
		}
		var err error
		pending, err = p.PrepareSave()
		return err
	})
	if err != nil {
		return page, err
	}

	saveErr := e.api.UpdateProfile(ctx, sess.Token(), page.ProfileID, pending.Field, pending.Value)

	page, err = e.pages.Update(ctx, sessionID, id, func(p *domain.ProfilePage) error {
		if saveErr != nil {
			return p.RejectSave(pending, domain.UserMessage(saveErr, SaveFallbackMessage))
		}
		return p.ApplySave(pending)
	})

	outcome := domain.EditSaved
	switch {
	case errors.Is(err, domain.ErrStaleResponse):
		outcome = domain.EditStale
		log.Debug().Str("field", string(pending.Field)).Uint64("generation", pending.Generation).Msg("stale save response discarded")
	case err != nil:
		outcome = domain.EditFailed
		log.Error().Err(err).Msg("failed to update page state after save")
	case saveErr != nil:
		outcome = domain.EditFailed
		err = saveErr
		log.Error().Err(saveErr).Str("field", string(pending.Field)).Msg("error updating profile")
	}

	e.audit.Record(domain.ProfileEditEvent{
		ProfileID: domain.ParseUserID(string(id)),
		Field:     pending.Field,
		Outcome:   outcome,
		RequestID: requestid.From(ctx),
		At:        time.Now().UTC(),
	})

	return page, err
}
