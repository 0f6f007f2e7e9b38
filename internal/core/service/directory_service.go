package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// DirectoryService serves the public professionals listing.
type DirectoryService struct {
	api ports.UsersAPI
	log zerolog.Logger
}

func NewDirectoryService(api ports.UsersAPI, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{api: api, log: log}
}

func (s *DirectoryService) List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.ProfessionalCard, error) {
	filter.Region = strings.TrimSpace(filter.Region)
	filter.TreatmentType = strings.TrimSpace(filter.TreatmentType)

	cards, err := s.api.ListProfessionals(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Str("ezor", filter.Region).Str("sogeTipul", filter.TreatmentType).Msg("error listing professionals")
		return nil, err
	}
	return cards, nil
}

func (s *DirectoryService) Card(ctx context.Context, id domain.UserID) (domain.ProfessionalCard, error) {
	id = domain.ParseUserID(string(id))
	if id.IsZero() {
		return domain.ProfessionalCard{}, domain.ErrNotFound
	}

	card, err := s.api.GetProfessional(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id.String()).Msg("error fetching professional")
		return domain.ProfessionalCard{}, err
	}
	return card, nil
}
