package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
)

func TestTaskCreateThenGetRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"title":       "Write report",
		"description": "Quarterly numbers",
		"userId":      7,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, raw)
	}

	var created dto.TaskResponse
	decodeData(t, raw, &created)
	if created.ID == 0 {
		t.Fatal("created task has no id")
	}
	if created.Completed {
		t.Error("completed should default to false")
	}

	location := resp.Header.Get("Location")
	want := fmt.Sprintf("/api/tasks/%d", created.ID)
	if location != want {
		t.Errorf("Location = %q, want %q", location, want)
	}

	resp, raw = doJSON(t, app, http.MethodGet, location, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, body %s", resp.StatusCode, raw)
	}

	var fetched dto.TaskResponse
	decodeData(t, raw, &fetched)
	if fetched.ID != created.ID || fetched.Title != created.Title ||
		fetched.Description != created.Description || fetched.UserID != created.UserID {
		t.Errorf("round-trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestTaskListEmptyIsOK(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/tasks", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var tasks []dto.TaskResponse
	decodeData(t, raw, &tasks)
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(tasks))
	}
}

func TestTaskGetMissingAndBadID(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/tasks/42", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/tasks/not-a-number", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", resp.StatusCode)
	}
}

func TestTaskCreateMissingTitleRejected(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"description": "no title",
		"userId":      1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}
}

func TestTaskReplaceIDMismatchAlwaysBadRequest(t *testing.T) {
	app := newTestApp(t)

	// Record exists.
	resp, raw := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"title": "existing", "userId": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created dto.TaskResponse
	decodeData(t, raw, &created)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), fiber.Map{
		"id": created.ID + 1, "title": "mismatch", "userId": 1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("existing record: status = %d, want 400", resp.StatusCode)
	}

	// Record does not exist: still a bad request, not a 404.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/tasks/9999", fiber.Map{
		"id": 1, "title": "mismatch", "userId": 1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing record: status = %d, want 400", resp.StatusCode)
	}
}

func TestTaskReplaceFlow(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"title": "before", "userId": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created dto.TaskResponse
	decodeData(t, raw, &created)
	path := fmt.Sprintf("/api/tasks/%d", created.ID)

	resp, _ = doJSON(t, app, http.MethodPut, path, fiber.Map{
		"id": created.ID, "title": "after", "completed": true, "userId": 1,
		"version": created.Version,
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("replace status = %d, want 204", resp.StatusCode)
	}

	// A second replace with the same stale version loses the race.
	resp, _ = doJSON(t, app, http.MethodPut, path, fiber.Map{
		"id": created.ID, "title": "stale", "userId": 1,
		"version": created.Version,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("stale replace status = %d, want 409", resp.StatusCode)
	}

	resp, raw = doJSON(t, app, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var fetched dto.TaskResponse
	decodeData(t, raw, &fetched)
	if fetched.Title != "after" || !fetched.Completed {
		t.Errorf("replace not applied: %+v", fetched)
	}

	// Replace of a vanished record reports not-found.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/tasks/9999", fiber.Map{
		"id": 9999, "title": "ghost", "userId": 1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("vanished replace status = %d, want 404", resp.StatusCode)
	}
}

func TestTaskDeleteTwice(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/tasks", fiber.Map{
		"title": "doomed", "userId": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created dto.TaskResponse
	decodeData(t, raw, &created)
	path := fmt.Sprintf("/api/tasks/%d", created.ID)

	resp, _ = doJSON(t, app, http.MethodDelete, path, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("first delete status = %d, want 204", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, path, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
}
