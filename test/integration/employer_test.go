package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"workreg_backend/internal/models"
	"workreg_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployerCreate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)

	body := map[string]interface{}{
		"employer_type": "company",
		"company_name":  "Bangkok Seafood Processing Co., Ltd.",
		"tax_id":        "0105561234567",
		"contact_person": "Somchai P.",
		"phone":          "+66-2-555-0101",
		"province":       "Bangkok",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/employers", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var created models.Employer
	require.NoError(t, json.Unmarshal([]byte(resBody), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Bangkok Seafood Processing Co., Ltd.", created.CompanyName)
	assert.Equal(t, models.EmployerTypeCompany, created.EmployerType)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, user.ID, *created.CreatedBy)
}

func TestEmployerCreate_ValidationFailure(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	// Missing company_name and tax_id, bad employer_type.
	body := map[string]interface{}{
		"employer_type": "government",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/employers", token, body)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "company_name")
	assert.Contains(t, resBody, "tax_id")
}

func TestEmployerGetAndList(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Chiang Mai Farms", user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Chiang Mai Farms")

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Chiang Mai Farms")
}

func TestEmployerGet_NotFound(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// Partial update: absent fields keep their values.
func TestEmployerUpdate_Partial(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Original Name Co.", user.ID)

	body := map[string]interface{}{
		"contact_person": "New Contact",
	}
	res, resBody := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var updated models.Employer
	require.NoError(t, json.Unmarshal([]byte(resBody), &updated))
	assert.Equal(t, "Original Name Co.", updated.CompanyName)
	require.NotNil(t, updated.ContactPerson)
	assert.Equal(t, "New Contact", *updated.ContactPerson)
}

func TestEmployerUpdate_NotFound(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateApprovedUser(t, tx)

	body := map[string]interface{}{"company_name": "Ghost Co."}
	res, _ := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/employers/999999", token, body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestEmployerDelete(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Short-lived Co.", user.ID)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Deleting twice is a 404, not an error.
	res, _ = ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// Deleting an employer with attached workers succeeds and detaches them
// instead of failing or cascading the delete.
func TestEmployerDelete_OrphansWorkers(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Closing Down Co.", user.ID)
	worker := helpers.CreateWorker(t, tx, "Kept Worker", &employer.ID, user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/employers/%d", employer.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// The worker record survives, unlinked.
	var orphan models.Worker
	require.NoError(t, tx.First(&orphan, worker.ID).Error)
	assert.Nil(t, orphan.EmployerID)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/workers/%d", worker.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestEmployerWorkers(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateApprovedUser(t, tx)
	employer := helpers.CreateEmployer(t, tx, "Staffed Co.", user.ID)
	other := helpers.CreateEmployer(t, tx, "Other Co.", user.ID)

	helpers.CreateWorker(t, tx, "Aung Min", &employer.ID, user.ID)
	helpers.CreateWorker(t, tx, "Thiri Kyaw", &employer.ID, user.ID)
	helpers.CreateWorker(t, tx, "Zaw Lin", &other.ID, user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/employers/%d/workers", employer.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var workers []models.Worker
	require.NoError(t, json.Unmarshal([]byte(body), &workers))
	assert.Len(t, workers, 2)
	assert.NotContains(t, body, "Zaw Lin")

	// Unknown employer gives 404 rather than an empty list.
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/employers/999999/workers", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
