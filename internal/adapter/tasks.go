package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/utils"
	"github.com/MKhiriev/brain-sync/models"
	"github.com/go-resty/resty/v2"
)

const deltaPageSize = "100"

type googleTasksAdapter struct {
	client *utils.HTTPClient
	retry  *retrier

	logger *logger.Logger
}

// NewGoogleTasksAdapter constructs the REST implementation of [TasksAPI].
// It normalises and validates the base URL from cfg.TasksBaseURL and
// configures the underlying HTTP client with the resolved base URL, request
// timeout, and retry schedule.
//
// Returns an error if cfg.TasksBaseURL is empty or cannot be parsed as a
// valid URL.
func NewGoogleTasksAdapter(cfg config.Adapter, log *logger.Logger) (TasksAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.TasksBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tasks base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &googleTasksAdapter{
		client: client,
		retry:  newRetrier(cfg.RetryDelays),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type taskListsResponse struct {
	Items []models.TaskList `json:"items"`
}

type tasksPageResponse struct {
	Items         []models.RemoteTask `json:"items"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
	NextSyncToken string              `json:"nextSyncToken,omitempty"`
}

// ListTaskLists implements [TasksAPI]. It GETs /users/@me/lists and decodes
// the item collection.
func (g *googleTasksAdapter) ListTaskLists(ctx context.Context, token string) ([]models.TaskList, error) {
	var lists taskListsResponse

	err := g.retry.do(ctx, func() error {
		resp, err := g.request(ctx, token).Get("/users/@me/lists")
		if err = mapAPIError(resp, err); err != nil {
			return err
		}

		return decodeBody(resp, &lists)
	})
	if err != nil {
		return nil, fmt.Errorf("list task lists: %w", err)
	}

	return lists.Items, nil
}

// CreateTaskList implements [TasksAPI]. It POSTs the title to
// /users/@me/lists and returns the created list.
func (g *googleTasksAdapter) CreateTaskList(ctx context.Context, token, title string) (models.TaskList, error) {
	var list models.TaskList

	err := g.retry.do(ctx, func() error {
		resp, err := g.request(ctx, token).
			SetBody(map[string]string{"title": title}).
			Post("/users/@me/lists")
		if err = mapAPIError(resp, err); err != nil {
			return err
		}

		return decodeBody(resp, &list)
	})
	if err != nil {
		return models.TaskList{}, fmt.Errorf("create task list: %w", err)
	}

	return list, nil
}

// ListTasksDelta implements [TasksAPI]. Pages are fetched strictly
// sequentially: each page's nextPageToken feeds the next request, every
// page request passes through the retrier individually, and the newest
// nextSyncToken across pages wins.
func (g *googleTasksAdapter) ListTasksDelta(ctx context.Context, token, listID, syncToken string) (models.TaskDelta, error) {
	var delta models.TaskDelta
	pageToken := ""

	for {
		var page tasksPageResponse

		err := g.retry.do(ctx, func() error {
			req := g.request(ctx, token).
				SetPathParam("listID", listID).
				SetQueryParams(map[string]string{
					"maxResults":    deltaPageSize,
					"showCompleted": "true",
					"showHidden":    "true",
					"showDeleted":   "true",
				})
			if syncToken != "" {
				req.SetQueryParam("syncToken", syncToken)
			}
			if pageToken != "" {
				req.SetQueryParam("pageToken", pageToken)
			}

			resp, err := req.Get("/lists/{listID}/tasks")
			if err = mapAPIError(resp, err); err != nil {
				return err
			}

			return decodeBody(resp, &page)
		})
		if err != nil {
			if errors.Is(err, ErrSyncTokenExpired) {
				return models.TaskDelta{}, err
			}
			return models.TaskDelta{}, fmt.Errorf("list tasks delta: %w", err)
		}

		delta.Items = append(delta.Items, page.Items...)
		if page.NextSyncToken != "" {
			delta.NextSyncToken = page.NextSyncToken
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			return delta, nil
		}
	}
}

// PatchTaskStatus implements [TasksAPI].
func (g *googleTasksAdapter) PatchTaskStatus(ctx context.Context, token, listID, taskID, status string) error {
	err := g.retry.do(ctx, func() error {
		resp, err := g.request(ctx, token).
			SetPathParam("listID", listID).
			SetPathParam("taskID", taskID).
			SetBody(map[string]string{"status": status}).
			Patch("/lists/{listID}/tasks/{taskID}")
		return mapAPIError(resp, err)
	})
	if err != nil {
		return fmt.Errorf("patch task status: %w", err)
	}

	return nil
}

// CreateTask implements [TasksAPI]. The sorted item's category and event
// times are kept in the notes so the provenance survives the narrower task
// schema.
func (g *googleTasksAdapter) CreateTask(ctx context.Context, token, listID string, item models.SortedItem) error {
	title := normalizeText(item.Text)
	if title == "" {
		return errors.New("create task: empty title")
	}

	notes := []string{fmt.Sprintf("Created from BrainSync AI sort (%s)", item.Category)}
	if item.Start != "" {
		notes = append(notes, "start: "+item.Start)
	}
	if item.End != "" {
		notes = append(notes, "end: "+item.End)
	}

	body := map[string]string{
		"title": title,
		"notes": strings.Join(notes, "\n"),
	}
	if item.DueDate != "" {
		body["due"] = item.DueDate + "T23:59:00.000Z"
	}

	err := g.retry.do(ctx, func() error {
		resp, err := g.request(ctx, token).
			SetPathParam("listID", listID).
			SetBody(body).
			Post("/lists/{listID}/tasks")
		return mapAPIError(resp, err)
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (g *googleTasksAdapter) request(ctx context.Context, token string) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json")
}

func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// normalizeText collapses all whitespace runs to single spaces and trims
// the result.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
