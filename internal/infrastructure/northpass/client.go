package northpass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"go.uber.org/zap"
)

// maxResponseSize is the maximum allowed response size from the Northpass API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client implements lms.Client against the Northpass v2 REST API.
// All list endpoints are paginated; the client follows links.next until the
// whole collection is in hand so callers always see a complete universe.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Northpass API client
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cfg := config.withDefaults()

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

// GetAllUsers fetches every person in the LMS, including group memberships
func (c *Client) GetAllUsers(ctx context.Context) ([]lms.User, error) {
	resources, err := c.listAll(ctx, c.peopleURL())
	if err != nil {
		return nil, err
	}

	users := make([]lms.User, 0, len(resources))
	for _, r := range resources {
		user := lms.User{
			ID:        r.ID,
			Email:     r.Attributes.Email,
			FirstName: r.Attributes.FirstName,
			LastName:  r.Attributes.LastName,
			Active:    r.Attributes.DeactivatedAt == "",
		}
		if rel, ok := r.Relationships["groups"]; ok {
			for _, g := range rel.Data {
				user.AddGroup(g.ID)
			}
		}
		users = append(users, user)
	}
	return users, nil
}

// GetAllGroups fetches every group in the LMS
func (c *Client) GetAllGroups(ctx context.Context) ([]lms.Group, error) {
	resources, err := c.listAll(ctx, c.groupsURL())
	if err != nil {
		return nil, err
	}

	groups := make([]lms.Group, 0, len(resources))
	for _, r := range resources {
		groups = append(groups, lms.Group{
			ID:          r.ID,
			Name:        r.Attributes.Name,
			MemberCount: r.Attributes.PeopleCount,
		})
	}
	return groups, nil
}

// CreateGroup creates a new group
func (c *Client) CreateGroup(ctx context.Context, name, description string) (*lms.Group, error) {
	payload := groupRequest{Data: groupData{
		Type:       "groups",
		Attributes: groupAttributes{Name: name, Description: description},
	}}

	status, body, err := c.doRequest(ctx, http.MethodPost, c.groupsURL(), payload)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusConflict:
		return nil, fmt.Errorf("%w: %q", lms.ErrGroupExists, name)
	case status >= 400:
		return nil, c.apiError(status, body)
	}

	var resp singleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", lms.ErrInvalidResponse, err)
	}
	return &lms.Group{ID: resp.Data.ID, Name: resp.Data.Attributes.Name}, nil
}

// CreatePerson provisions a new LMS user. A duplicate email is not an error:
// the existing user is looked up and reported with AlreadyExists set.
func (c *Client) CreatePerson(ctx context.Context, input lms.CreatePersonInput) (*lms.CreatePersonResult, error) {
	if input.Email == "" {
		return nil, lms.ErrInvalidPerson
	}

	payload := createPersonRequest{Data: createPersonData{
		Type: "people",
		Attributes: createPersonAttributes{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
	}}

	status, body, err := c.doRequest(ctx, http.MethodPost, c.peopleURL(), payload)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return c.resolveExistingPerson(ctx, input.Email)
	case status >= 400:
		return nil, c.apiError(status, body)
	}

	var resp singleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", lms.ErrInvalidResponse, err)
	}
	return &lms.CreatePersonResult{UserID: resp.Data.ID}, nil
}

// resolveExistingPerson finds the user a duplicate-email conflict referred to
func (c *Client) resolveExistingPerson(ctx context.Context, email string) (*lms.CreatePersonResult, error) {
	u := c.peopleURL() + "?filter%5Bemail%5D=" + url.QueryEscape(email)
	status, body, err := c.doRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, c.apiError(status, body)
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", lms.ErrInvalidResponse, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: conflict reported but %q not found", lms.ErrInvalidResponse, email)
	}
	return &lms.CreatePersonResult{UserID: resp.Data[0].ID, AlreadyExists: true}, nil
}

// AddUserToGroup adds a person to a group
func (c *Client) AddUserToGroup(ctx context.Context, groupID, userID string) error {
	payload := membershipRequest{Data: []resourceIdentifier{{Type: "people", ID: userID}}}

	status, body, err := c.doRequest(ctx, http.MethodPost, c.membershipURL(groupID), payload)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusConflict:
		return lms.ErrAlreadyMember
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", lms.ErrGroupNotFound, groupID)
	case status >= 400:
		return c.apiError(status, body)
	}
	return nil
}

// RemoveUserFromGroup removes a person from a group
func (c *Client) RemoveUserFromGroup(ctx context.Context, groupID, userID string) error {
	payload := membershipRequest{Data: []resourceIdentifier{{Type: "people", ID: userID}}}

	status, body, err := c.doRequest(ctx, http.MethodDelete, c.membershipURL(groupID), payload)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", lms.ErrGroupNotFound, groupID)
	case status >= 400:
		return c.apiError(status, body)
	}
	return nil
}

// UpdateGroupName renames a group
func (c *Client) UpdateGroupName(ctx context.Context, groupID, newName string) error {
	payload := groupRequest{Data: groupData{
		Type:       "groups",
		Attributes: groupAttributes{Name: newName},
	}}

	status, body, err := c.doRequest(ctx, http.MethodPatch, c.groupsURL()+"/"+groupID, payload)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", lms.ErrGroupNotFound, groupID)
	case status >= 400:
		return c.apiError(status, body)
	}
	return nil
}

// DeactivateUser deactivates a person in the LMS
func (c *Client) DeactivateUser(ctx context.Context, userID string) error {
	status, body, err := c.doRequest(ctx, http.MethodDelete, c.peopleURL()+"/"+userID, nil)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", lms.ErrUserNotFound, userID)
	case status >= 400:
		return c.apiError(status, body)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func (c *Client) peopleURL() string {
	return c.config.BaseURL + "/v2/people"
}

func (c *Client) groupsURL() string {
	return c.config.BaseURL + "/v2/groups"
}

func (c *Client) membershipURL(groupID string) string {
	return c.config.BaseURL + "/v2/groups/" + groupID + "/relationships/people"
}

// listAll follows links.next until the collection is exhausted
func (c *Client) listAll(ctx context.Context, baseURL string) ([]resource, error) {
	var all []resource

	next := baseURL + "?page%5Bsize%5D=" + strconv.Itoa(c.config.PageSize)
	for next != "" {
		status, body, err := c.doRequest(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}
		if status >= 400 {
			return nil, c.apiError(status, body)
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: %v", lms.ErrInvalidResponse, err)
		}
		all = append(all, page.Data...)
		next = page.Links.Next
	}
	return all, nil
}

// doRequest performs one HTTP call, retrying on rate limits and server errors.
// It returns the final status and body; callers map statuses to domain errors.
func (c *Client) doRequest(ctx context.Context, method, rawURL string, payload any) (int, []byte, error) {
	var bodyBytes []byte
	if payload != nil {
		var err error
		bodyBytes, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("northpass: failed to encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(c.config.RetryDelay):
			}
		}

		var reqBody io.Reader
		if bodyBytes != nil {
			reqBody = bytes.NewReader(bodyBytes)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
		if err != nil {
			return 0, nil, fmt.Errorf("northpass: failed to create request: %w", err)
		}
		req.Header.Set("X-Api-Key", c.config.APIKey)
		req.Header.Set("Accept", "application/json")
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", lms.ErrUnavailable, err)
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("northpass: failed to read response: %w", readErr)
			continue
		}

		// Retry rate limits and server errors, everything else is final
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			c.logger.Warn("northpass request will be retried",
				zap.String("url", rawURL),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1))
			lastErr = c.apiError(resp.StatusCode, body)
			continue
		}

		return resp.StatusCode, body, nil
	}
	return 0, nil, lastErr
}

// apiError maps an HTTP status to a domain sentinel, carrying any detail the
// API included in the error body
func (c *Client) apiError(status int, body []byte) error {
	detail := ""
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		detail = errResp.Errors[0].Detail
		if detail == "" {
			detail = errResp.Errors[0].Title
		}
	}

	var base error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		base = lms.ErrAuthFailed
	case status == http.StatusTooManyRequests:
		base = lms.ErrRateLimited
	case status >= 500:
		base = lms.ErrUnavailable
	default:
		base = lms.ErrRequestFailed
	}

	if detail != "" {
		return fmt.Errorf("%w: HTTP %d: %s", base, status, detail)
	}
	return fmt.Errorf("%w: HTTP %d", base, status)
}

// Ensure Client implements the LMS client interface
var _ lms.Client = (*Client)(nil)
