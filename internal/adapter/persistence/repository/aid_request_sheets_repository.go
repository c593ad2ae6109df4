package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	sheetsCreatedAtLayout = "02/01/2006 15:04:05"
	sheetsDataRange       = "!A2:N"
	sheetsColumnCount     = 14

	defaultSheetsRetryAttempts  = 3
	defaultSheetsRetryDelay     = 2 * time.Second
	defaultSessionRefreshPeriod = 50 * time.Minute
)

// AidRequestSheetsRepository reads and writes aid requests against the legacy
// Google Sheets workbook. Compatibility shim kept for the migration window:
// lookups are linear scans over the sheet, and rows created by the old system
// are located by their formatted creation timestamp (GetByCreatedAt).
//
// Column layout (one request per row, starting at row 2):
//
//	A id | B cpf | C name | D email | E course | F advisor | G motive
//	| H status | I requested | J approved | K observations
//	| L created_at | M last_updated_at | N last_modified_by

type AidRequestSheetsRepository struct {
	spreadsheetID   string
	sheetName       string
	credentialsPath string
	refreshPeriod   time.Duration
	retryAttempts   int
	retryDelay      time.Duration

	muSession  sync.Mutex
	service    *sheets.Service
	sessionEnd time.Time
}

var _ interfaces.IAidRequestRepository = (*AidRequestSheetsRepository)(nil)

func NewAidRequestSheetsRepository(spreadsheetID, sheetName, credentialsPath string) *AidRequestSheetsRepository {
	refresh := defaultSessionRefreshPeriod
	if v := os.Getenv("SHEETS_SESSION_REFRESH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			refresh = d
		}
	}
	return &AidRequestSheetsRepository{
		spreadsheetID:   spreadsheetID,
		sheetName:       sheetName,
		credentialsPath: credentialsPath,
		refreshPeriod:   refresh,
		retryAttempts:   defaultSheetsRetryAttempts,
		retryDelay:      defaultSheetsRetryDelay,
	}
}

// EnsureFreshSession returns a usable Sheets client, rebuilding the
// authenticated session once the refresh period has elapsed. Connections
// below the refresh interval are reused.
func (r *AidRequestSheetsRepository) EnsureFreshSession(ctx context.Context) (*sheets.Service, error) {
	r.muSession.Lock()
	defer r.muSession.Unlock()

	if r.service != nil && time.Now().Before(r.sessionEnd) {
		return r.service, nil
	}

	log.Printf("[sheets][repo] session expired or absent; re-authenticating spreadsheet=%s", r.spreadsheetID)
	credentialsJSON, err := os.ReadFile(r.credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to configure JWT from credentials: %w", err)
	}
	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets API client: %w", err)
	}

	r.service = service
	r.sessionEnd = time.Now().Add(r.refreshPeriod)
	return r.service, nil
}

func (r *AidRequestSheetsRepository) Create(ctx context.Context, e entities.AidRequest) (entities.AidRequest, error) {
	svc, err := r.EnsureFreshSession(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}

	row := requestToRow(e)
	call := func() error {
		_, err := svc.Spreadsheets.Values.
			Append(r.spreadsheetID, fmt.Sprintf("'%s'", r.sheetName), &sheets.ValueRange{Values: [][]interface{}{row}}).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		return err
	}
	if err := r.executeSheetsCall(ctx, call, "append request row"); err != nil {
		return entities.AidRequest{}, err
	}
	return e, nil
}

func (r *AidRequestSheetsRepository) GetByID(ctx context.Context, id string) (entities.AidRequest, error) {
	rows, err := r.loadRows(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}
	for _, row := range rows {
		if row.request.ID == id {
			return row.request, nil
		}
	}
	return entities.AidRequest{}, nil
}

// GetByCreatedAt locates a row by the formatted creation timestamp the legacy
// system used as its key. A duplicated timestamp makes the lookup ambiguous
// and is surfaced, never silently resolved.
func (r *AidRequestSheetsRepository) GetByCreatedAt(ctx context.Context, createdAt time.Time) (entities.AidRequest, error) {
	rows, err := r.loadRows(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}
	wanted := createdAt.Format(sheetsCreatedAtLayout)
	var found entities.AidRequest
	matches := 0
	for _, row := range rows {
		if row.createdAtRaw == wanted {
			found = row.request
			matches++
		}
	}
	if matches > 1 {
		return entities.AidRequest{}, interfaces.ErrAmbiguousCreatedAt
	}
	if matches == 0 {
		return entities.AidRequest{}, nil
	}
	return found, nil
}

func (r *AidRequestSheetsRepository) LoadAll(ctx context.Context) ([]entities.AidRequest, error) {
	rows, err := r.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AidRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.request)
	}
	return out, nil
}

func (r *AidRequestSheetsRepository) ListByCPF(ctx context.Context, cpf string) ([]entities.AidRequest, error) {
	rows, err := r.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.AidRequest
	for _, row := range rows {
		if row.request.RequesterCPF == cpf {
			out = append(out, row.request)
		}
	}
	return out, nil
}

func (r *AidRequestSheetsRepository) UpdateFields(ctx context.Context, id string, fields map[string]string) (entities.AidRequest, error) {
	rows, err := r.loadRows(ctx)
	if err != nil {
		return entities.AidRequest{}, err
	}

	for _, row := range rows {
		if row.request.ID != id {
			continue
		}
		updated := row.request
		for field, value := range fields {
			switch field {
			case entities.FieldStatus:
				updated.Status = entities.RequestStatus(value)
			case entities.FieldApprovedValue:
				updated.ApprovedValue = value
			case entities.FieldObservations:
				updated.Observations = value
			case entities.FieldLastUpdatedAt:
				ts, err := time.Parse(time.RFC3339Nano, value)
				if err != nil {
					return entities.AidRequest{}, fmt.Errorf("bad %s value %q: %w", field, value, err)
				}
				updated.LastUpdatedAt = ts
			case entities.FieldLastModifiedBy:
				updated.LastModifiedBy = value
			default:
				return entities.AidRequest{}, fmt.Errorf("field %q is not updatable", field)
			}
		}

		svc, err := r.EnsureFreshSession(ctx)
		if err != nil {
			return entities.AidRequest{}, err
		}
		writeRange := fmt.Sprintf("'%s'!A%d:N%d", r.sheetName, row.index, row.index)
		call := func() error {
			_, err := svc.Spreadsheets.Values.
				Update(r.spreadsheetID, writeRange, &sheets.ValueRange{Values: [][]interface{}{requestToRow(updated)}}).
				ValueInputOption("USER_ENTERED").
				Context(ctx).Do()
			return err
		}
		if err := r.executeSheetsCall(ctx, call, fmt.Sprintf("update row %d", row.index)); err != nil {
			return entities.AidRequest{}, err
		}
		return updated, nil
	}
	return entities.AidRequest{}, nil
}

type sheetRow struct {
	index        int // 1-based spreadsheet row number
	createdAtRaw string
	request      entities.AidRequest
}

func (r *AidRequestSheetsRepository) loadRows(ctx context.Context) ([]sheetRow, error) {
	svc, err := r.EnsureFreshSession(ctx)
	if err != nil {
		return nil, err
	}

	var resp *sheets.ValueRange
	readRange := fmt.Sprintf("'%s'%s", r.sheetName, sheetsDataRange)
	call := func() error {
		var err error
		resp, err = svc.Spreadsheets.Values.Get(r.spreadsheetID, readRange).Context(ctx).Do()
		return err
	}
	if err := r.executeSheetsCall(ctx, call, "read request rows"); err != nil {
		return nil, err
	}

	rows := make([]sheetRow, 0, len(resp.Values))
	for i, raw := range resp.Values {
		row := sheetRow{index: i + 2}
		cells := make([]string, sheetsColumnCount)
		for j := 0; j < sheetsColumnCount && j < len(raw); j++ {
			cells[j] = fmt.Sprintf("%v", raw[j])
		}
		row.createdAtRaw = cells[11]
		createdAt, _ := time.Parse(sheetsCreatedAtLayout, cells[11])
		updatedAt, _ := time.Parse(time.RFC3339Nano, cells[12])
		row.request = entities.AidRequest{
			ID:             cells[0],
			RequesterCPF:   cells[1],
			RequesterName:  cells[2],
			RequesterEmail: cells[3],
			Course:         cells[4],
			Advisor:        cells[5],
			Motive:         cells[6],
			Status:         entities.RequestStatus(cells[7]),
			RequestedValue: cells[8],
			ApprovedValue:  cells[9],
			Observations:   cells[10],
			CreatedAt:      createdAt,
			LastUpdatedAt:  updatedAt,
			LastModifiedBy: cells[13],
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func requestToRow(e entities.AidRequest) []interface{} {
	return []interface{}{
		e.ID,
		e.RequesterCPF,
		e.RequesterName,
		e.RequesterEmail,
		e.Course,
		e.Advisor,
		e.Motive,
		string(e.Status),
		e.RequestedValue,
		e.ApprovedValue,
		e.Observations,
		e.CreatedAt.Format(sheetsCreatedAtLayout),
		e.LastUpdatedAt.UTC().Format(time.RFC3339Nano),
		e.LastModifiedBy,
	}
}

func isRetryableSheetsError(err error) bool {
	if err == nil {
		return false
	}
	apiErr, ok := err.(*googleapi.Error)
	if !ok {
		return false
	}
	if apiErr.Code >= 500 && apiErr.Code < 600 {
		return true
	}
	if apiErr.Code == 429 {
		return true
	}
	if apiErr.Code == 403 && strings.Contains(strings.ToLower(apiErr.Message), "ratelimitexceeded") {
		return true
	}
	return false
}

func (r *AidRequestSheetsRepository) executeSheetsCall(ctx context.Context, call func() error, operationDesc string) error {
	for attempt := 0; attempt <= r.retryAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("operation %q cancelled via context: %w", operationDesc, ctx.Err())
		default:
		}

		err := call()
		if err == nil {
			return nil
		}
		if !isRetryableSheetsError(err) || attempt == r.retryAttempts {
			return fmt.Errorf("sheets operation %q failed: %w", operationDesc, err)
		}

		delay := r.retryDelay * time.Duration(1<<attempt)
		log.Printf("[sheets][repo] operation %q failed (attempt %d/%d): %v; retrying in %s", operationDesc, attempt+1, r.retryAttempts+1, err, delay)
		select {
		case <-ctx.Done():
			return fmt.Errorf("operation %q cancelled via context: %w", operationDesc, ctx.Err())
		case <-time.After(delay):
		}
	}
	return nil
}
