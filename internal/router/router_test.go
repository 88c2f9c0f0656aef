package router_test

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/handler"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/router"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/utils"
)

const (
    testSecret     = "test-secret"
    testPassphrase = "open sesame"
)

// newServer wires the full HTTP surface against the in-memory store.
func newServer(t *testing.T) *echo.Echo {
    t.Helper()

    mem := store.NewMemory(nil)
    ann := store.NewMemoryAnnouncements(nil)
    set := store.NewMemorySettings()
    catalog := model.NewCatalog(model.DefaultSpaces())
    policy := &schedule.Policy{
        Grid:         schedule.Grid{Open: 540, Close: 1320, SlotMinutes: 30},
        DurationRule: schedule.DurationRuleCap,
        RepeatScope:  schedule.RepeatScopeDay,
    }
    booking := service.NewBooking(mem, catalog, policy, true, nil)

    passHash, err := utils.HashPassphrase(testPassphrase, 4)
    require.NoError(t, err)

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterPublic(e,
        handler.NewSpaceHandler(catalog, booking),
        handler.NewReservationHandler(booking),
        handler.NewAnnouncementHandler(ann),
        handler.NewSettingsHandler(set),
    )
    router.RegisterAdmin(e, handler.NewAdminHandler(booking, ann, passHash, testSecret, 60), testSecret)
    return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
    var reader *strings.Reader
    if body == "" {
        reader = strings.NewReader("")
    } else {
        reader = strings.NewReader(body)
    }
    req := httptest.NewRequest(method, path, reader)
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func createBody(t *testing.T, user, start, end string) string {
    t.Helper()
    b, err := json.Marshal(map[string]string{
        "spaceId":   model.DefaultSpaces()[0].ID,
        "userName":  user,
        "purpose":   "bible study",
        "date":      "2026-09-05",
        "startTime": start,
        "endTime":   end,
    })
    require.NoError(t, err)
    return string(b)
}

func login(t *testing.T, e *echo.Echo) string {
    t.Helper()
    rec := doJSON(e, http.MethodPost, "/v1/admin/login", fmt.Sprintf(`{"passphrase":%q}`, testPassphrase), "")
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    var out struct {
        Token string `json:"token"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
    require.NotEmpty(t, out.Token)
    return out.Token
}

func TestHealthz(t *testing.T) {
    e := newServer(t)
    rec := doJSON(e, http.MethodGet, "/healthz", "", "")
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSpaces(t *testing.T) {
    e := newServer(t)
    rec := doJSON(e, http.MethodGet, "/v1/spaces", "", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var spaces []model.Space
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spaces))
    assert.Len(t, spaces, len(model.DefaultSpaces()))
}

func TestCreateReservation(t *testing.T) {
    e := newServer(t)

    rec := doJSON(e, http.MethodPost, "/v1/reservations", createBody(t, "Lee", "10:00", "11:00"), "")
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
    var res model.Reservation
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
    assert.NotEmpty(t, res.ID)
    assert.Equal(t, model.StatusPending, res.Status)
}

func TestCreateReservationValidationError(t *testing.T) {
    e := newServer(t)

    // 150 minutes exceeds the first-time allowance.
    rec := doJSON(e, http.MethodPost, "/v1/reservations", createBody(t, "Lee", "10:00", "12:30"), "")
    require.Equal(t, http.StatusBadRequest, rec.Code)
    var body map[string]string
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    assert.Contains(t, body["error"], "120")
}

func TestCreateReservationUnknownSpace(t *testing.T) {
    e := newServer(t)
    rec := doJSON(e, http.MethodPost, "/v1/reservations",
        `{"spaceId":"nope","userName":"Lee","purpose":"x","date":"2026-09-05","startTime":"10:00","endTime":"11:00"}`, "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminLoginWrongPassphrase(t *testing.T) {
    e := newServer(t)
    rec := doJSON(e, http.MethodPost, "/v1/admin/login", `{"passphrase":"wrong"}`, "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
    e := newServer(t)

    rec := doJSON(e, http.MethodGet, "/v1/admin/reservations", "", "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/admin/reservations", "", "not-a-jwt")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApproveFlow(t *testing.T) {
    e := newServer(t)
    token := login(t, e)

    rec := doJSON(e, http.MethodPost, "/v1/reservations", createBody(t, "Lee", "10:00", "11:00"), "")
    require.Equal(t, http.StatusCreated, rec.Code)
    var res model.Reservation
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

    // The pending queue shows the new request.
    rec = doJSON(e, http.MethodGet, "/v1/admin/reservations", "", token)
    require.Equal(t, http.StatusOK, rec.Code)
    var pending []model.Reservation
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
    require.Len(t, pending, 1)

    rec = doJSON(e, http.MethodPost, "/v1/admin/reservations/"+res.ID+"/approve", "", token)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    var approved model.Reservation
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
    assert.Equal(t, model.StatusConfirmed, approved.Status)

    // Deciding again conflicts.
    rec = doJSON(e, http.MethodPost, "/v1/admin/reservations/"+res.ID+"/reject", "", token)
    assert.Equal(t, http.StatusConflict, rec.Code)

    // An overlapping new request is now refused at creation.
    rec = doJSON(e, http.MethodPost, "/v1/reservations", createBody(t, "Park", "10:30", "11:30"), "")
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveUnknownReservation(t *testing.T) {
    e := newServer(t)
    token := login(t, e)
    rec := doJSON(e, http.MethodPost, "/v1/admin/reservations/missing/approve", "", token)
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
    e := newServer(t)
    id := model.DefaultSpaces()[0].ID
    rec := doJSON(e, http.MethodGet, "/v1/spaces/"+id+"/availability?date=2026-09-05", "", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var av service.Availability
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &av))
    assert.Len(t, av.Slots, 26)
    assert.Len(t, av.Free, 1)
}

func TestSuggestEndpoint(t *testing.T) {
    e := newServer(t)
    id := model.DefaultSpaces()[0].ID
    rec := doJSON(e, http.MethodGet, "/v1/spaces/"+id+"/suggest?date=2026-09-05&user=Lee&start=10:00", "", "")
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
    var out map[string]string
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
    assert.Equal(t, "12:00", out["endTime"])
}

func TestAnnouncements(t *testing.T) {
    e := newServer(t)
    token := login(t, e)

    rec := doJSON(e, http.MethodPost, "/v1/announcements", "", token)
    assert.Equal(t, http.StatusMethodNotAllowed, rec.Code) // posting is admin-only, different path

    rec = doJSON(e, http.MethodPost, "/v1/admin/announcements",
        `{"title":"closure","content":"the hall is closed on Friday","isImportant":true}`, token)
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

    rec = doJSON(e, http.MethodGet, "/v1/announcements", "", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var list []model.Announcement
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
    require.Len(t, list, 1)
    assert.Equal(t, "closure", list[0].Title)
    assert.True(t, list[0].IsImportant)
}

func TestSettingsRoundTrip(t *testing.T) {
    e := newServer(t)

    rec := doJSON(e, http.MethodGet, "/v1/settings", "", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var s model.UserSettings
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
    assert.Equal(t, model.DefaultSettings(), s)

    rec = doJSON(e, http.MethodPut, "/v1/settings", `{"emailNotifications":false,"inAppNotifications":true}`, "")
    require.Equal(t, http.StatusOK, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/settings", "", "")
    require.Equal(t, http.StatusOK, rec.Code)
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
    assert.False(t, s.EmailNotifications)
    assert.True(t, s.InAppNotifications)
}
