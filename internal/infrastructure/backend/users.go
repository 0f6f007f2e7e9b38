package backend

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// usersClient implements ports.UsersAPI against /users.
type usersClient struct {
	client *BaseClient
}

// NewUsersClient creates the users API client.
func NewUsersClient(client *BaseClient) ports.UsersAPI {
	return &usersClient{client: client}
}

func (c *usersClient) Register(ctx context.Context, form domain.RegistrationForm) (res domain.AuthResult, err error) {
	defer func(start time.Time) { observe("register", start, err) }(time.Now())

	resp, err := c.client.Post(ctx, "/users/register", form, "")
	if err != nil {
		return domain.AuthResult{}, err
	}
	if err := DecodeResponse(resp, &res); err != nil {
		return domain.AuthResult{}, err
	}
	return res, nil
}

func (c *usersClient) Login(ctx context.Context, form domain.LoginForm) (res domain.AuthResult, err error) {
	defer func(start time.Time) { observe("login", start, err) }(time.Now())

	resp, err := c.client.Post(ctx, "/users/login", form, "")
	if err != nil {
		return domain.AuthResult{}, err
	}
	if err := DecodeResponse(resp, &res); err != nil {
		return domain.AuthResult{}, err
	}
	return res, nil
}

func (c *usersClient) GetProfile(ctx context.Context, token string, id domain.UserID) (profile domain.UserProfile, err error) {
	defer func(start time.Time) { observe("get_profile", start, err) }(time.Now())

	resp, err := c.client.Get(ctx, profilePath(id), token)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if err := DecodeResponse(resp, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// UpdateProfile sends {field: value}. The response body is ignored.
func (c *usersClient) UpdateProfile(ctx context.Context, token string, id domain.UserID, field domain.Field, value string) (err error) {
	defer func(start time.Time) { observe("update_profile", start, err) }(time.Now())

	resp, err := c.client.Put(ctx, profilePath(id), map[string]string{string(field): value}, token)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, nil)
}

func (c *usersClient) ListProfessionals(ctx context.Context, filter domain.ProfessionalFilter) (cards []domain.ProfessionalCard, err error) {
	defer func(start time.Time) { observe("list_professionals", start, err) }(time.Now())

	q := url.Values{}
	if filter.Region != "" {
		q.Set("ezor", filter.Region)
	}
	if filter.TreatmentType != "" {
		q.Set("sogeTipul", filter.TreatmentType)
	}
	path := "/users/professionals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.client.Get(ctx, path, "")
	if err != nil {
		return nil, err
	}
	if err := DecodeResponse(resp, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *usersClient) GetProfessional(ctx context.Context, id domain.UserID) (card domain.ProfessionalCard, err error) {
	defer func(start time.Time) { observe("get_professional", start, err) }(time.Now())

	resp, err := c.client.Get(ctx, fmt.Sprintf("/users/professionals/%s", url.PathEscape(id.String())), "")
	if err != nil {
		return domain.ProfessionalCard{}, err
	}
	if err := DecodeResponse(resp, &card); err != nil {
		return domain.ProfessionalCard{}, err
	}
	return card, nil
}

func profilePath(id domain.UserID) string {
	return fmt.Sprintf("/users/profile/%s", url.PathEscape(id.String()))
}
