// Paymo REST API client with quota tracking and request pacing
package paymo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hourlog/paymosync/internal/hourlog"
	"github.com/hourlog/paymosync/internal/shared"
	"golang.org/x/time/rate"
)

// DefaultRoot is the production Paymo API root.
const DefaultRoot = "https://app.paymoapp.com/api"

// API provides methods for the Paymo endpoints the sync tool uses.
type API struct {
	root       string
	token      string
	httpClient *http.Client
	quota      *RateLimit
	floor      *rate.Limiter
	logger     *log.Logger
}

// APIOpts contains configuration options for creating an API client.
type APIOpts struct {
	Root              string
	Token             string
	HTTPClient        *http.Client
	Logger            *log.Logger
	RequestsPerSecond float64
}

// NewAPI creates a new API client with the provided configuration.
func NewAPI(opts APIOpts) *API {
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 5.0
	}

	return &API{
		root:       strings.TrimSuffix(opts.Root, "/"),
		token:      opts.Token,
		httpClient: opts.HTTPClient,
		quota:      NewRateLimit(opts.Logger),
		floor:      rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		logger:     opts.Logger,
	}
}

// Clients retrieves all clients visible to the account.
func (a *API) Clients(ctx context.Context) ([]Client, error) {
	var resp struct {
		Clients []Client `json:"clients"`
	}
	if err := a.do(ctx, http.MethodGet, "clients", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

// Projects retrieves projects matching the filter.
func (a *API) Projects(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	var resp struct {
		Projects []Project `json:"projects"`
	}
	if err := a.do(ctx, http.MethodGet, "projects", whereQuery(filter.Where()), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// Tasks retrieves all tasks visible to the account.
func (a *API) Tasks(ctx context.Context) ([]Task, error) {
	var resp struct {
		Tasks []Task `json:"tasks"`
	}
	if err := a.do(ctx, http.MethodGet, "tasks", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CurrentUser resolves the account the API token belongs to.
func (a *API) CurrentUser(ctx context.Context) (User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	if err := a.do(ctx, http.MethodGet, "me", nil, nil, &resp); err != nil {
		return User{}, err
	}
	if len(resp.Users) == 0 {
		return User{}, fmt.Errorf("%w: GET me: empty users list", shared.ErrAPIRequest)
	}
	return resp.Users[0], nil
}

// ListEntries retrieves the user's time entries within the period.
func (a *API) ListEntries(ctx context.Context, userID uint64, period hourlog.Period) ([]TimeEntry, error) {
	filter := EntryFilter{UserID: &userID, Period: &period}
	var resp struct {
		Entries []TimeEntry `json:"entries"`
	}
	if err := a.do(ctx, http.MethodGet, "entries", whereQuery(filter.Where()), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// CreateEntry adds a new time entry for the task on the given date.
func (a *API) CreateEntry(ctx context.Context, taskID uint64, date hourlog.Date, seconds uint32, description string) error {
	body := struct {
		TaskID      uint64 `json:"task_id"`
		Date        string `json:"date"`
		Duration    uint32 `json:"duration"`
		Description string `json:"description"`
	}{
		TaskID:      taskID,
		Date:        date.String(),
		Duration:    seconds,
		Description: description,
	}
	return a.do(ctx, http.MethodPost, "entries", nil, body, nil)
}

// DeleteEntry removes the time entry with the given id.
func (a *API) DeleteEntry(ctx context.Context, id uint64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("entries/%d", id), nil, nil, nil)
}

// do performs one API call: pace, request, quota refresh, envelope decode.
func (a *API) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := a.floor.Wait(ctx); err != nil {
		return err
	}
	if err := a.quota.Wait(ctx); err != nil {
		return err
	}

	fullURL := a.root + "/" + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(a.token, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	a.logger.Debug("API call", "method", method, "path", path)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", shared.ErrAPIRequest, method, path, err)
	}
	defer resp.Body.Close()

	a.quota.Update(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", shared.ErrAPIRequest, method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: error parsing response: %v", shared.ErrAPIRequest, method, path, err)
	}
	return nil
}

func whereQuery(where string) url.Values {
	if where == "" {
		return nil
	}
	return url.Values{"where": []string{where}}
}
