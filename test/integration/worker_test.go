package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"workreg_backend/internal/models"
	"workreg_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerCreate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)

	body := map[string]interface{}{
		"full_name":            "Aung Kyaw Moe",
		"nationality":          "Myanmar",
		"passport_no":          "MD123456",
		"date_of_birth":        "1995-04-12",
		"gender":               "male",
		"passport_expiry_date": "2028-01-31",
		"position":             "Factory worker",
		"salary":               12000,
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/workers", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var created models.Worker
	require.NoError(t, json.Unmarshal([]byte(resBody), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Aung Kyaw Moe", created.FullName)
	assert.Equal(t, models.EmploymentStatusActive, created.EmploymentStatus)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, 1995, created.DateOfBirth.Year())
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, user.ID, *created.CreatedBy)
}

// Linking to a registered employer denormalizes its company name onto the
// worker record.
func TestWorkerCreate_EmployerLink(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Linked Employer Co.", user.ID)

	body := map[string]interface{}{
		"full_name":   "Su Su Hlaing",
		"nationality": "Myanmar",
		"passport_no": "MD654321",
		"employer_id": employer.ID,
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/workers", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var created models.Worker
	require.NoError(t, json.Unmarshal([]byte(resBody), &created))
	require.NotNil(t, created.EmployerID)
	assert.Equal(t, employer.ID, *created.EmployerID)
	require.NotNil(t, created.EmployerName)
	assert.Equal(t, "Linked Employer Co.", *created.EmployerName)
}

func TestWorkerCreate_UnknownEmployer(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	body := map[string]interface{}{
		"full_name":   "Nobody's Worker",
		"nationality": "Myanmar",
		"passport_no": "MD000001",
		"employer_id": 999999,
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/workers", token, body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestWorkerCreate_ValidationFailure(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	body := map[string]interface{}{
		"full_name":     "Bad Date Worker",
		"nationality":   "Myanmar",
		"passport_no":   "MD000002",
		"date_of_birth": "12/04/1995",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/workers", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "date_of_birth")
}

func TestWorkerList(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	helpers.CreateWorker(t, tx, "List Worker One", nil, user.ID)
	helpers.CreateWorker(t, tx, "List Worker Two", nil, user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "List Worker One")
	assert.Contains(t, body, "List Worker Two")
}

func TestWorkerUpdate_Partial(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	worker := helpers.CreateWorker(t, tx, "Update Target", nil, user.ID)

	body := map[string]interface{}{
		"position":        "Supervisor",
		"work_start_date": "2024-06-01",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/api/v1/workers/%d", worker.ID), token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var updated models.Worker
	require.NoError(t, json.Unmarshal([]byte(resBody), &updated))
	assert.Equal(t, "Update Target", updated.FullName)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "Supervisor", *updated.Position)
	require.NotNil(t, updated.WorkStartDate)
	assert.Equal(t, time.June, updated.WorkStartDate.Month())
}

// Marking a worker resigned records the employment status transition.
func TestWorkerUpdate_Resignation(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	worker := helpers.CreateWorker(t, tx, "Resigning Worker", nil, user.ID)

	body := map[string]interface{}{
		"employment_status": "resigned",
		"resignation_date":  "2026-08-15",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/api/v1/workers/%d", worker.ID), token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var updated models.Worker
	require.NoError(t, json.Unmarshal([]byte(resBody), &updated))
	assert.Equal(t, models.EmploymentStatusResigned, updated.EmploymentStatus)
	assert.NotNil(t, updated.ResignationDate)
}

func TestWorkerDelete(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	worker := helpers.CreateWorker(t, tx, "Delete Target", nil, user.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/workers/%d", worker.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/workers/%d", worker.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestWorkerGet_NotFound(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/workers/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
