package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dj-site/config"
	"dj-site/internal/repository/memrepo"
	"dj-site/internal/services"
)

type testServer struct {
	app       *fiber.App
	publicDir string
	objects   *memrepo.Objects
	cleanup   *memrepo.Cleanup
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	timeout := time.Second
	objects := memrepo.NewObjects()
	cleanup := memrepo.NewCleanup()

	storage := services.NewStorageService(objects, cleanup, "/media/", timeout)
	events := services.NewEventService(memrepo.NewEvents(), storage, timeout)
	messages := services.NewMessageService(memrepo.NewMessages(), timeout)
	settings := services.NewSettingsService(memrepo.NewSettings(), config.DefaultSiteDefaults(), timeout)
	auth, err := services.NewAuthService(memrepo.NewUsers(), "route-test-secret", time.Hour, bcrypt.MinCost, timeout)
	require.NoError(t, err)

	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "admin.html"), []byte("<h1>admin</h1>"), 0o644))

	app := NewApp(Services{
		Events:   events,
		Messages: messages,
		Settings: settings,
		Auth:     auth,
		Storage:  storage,
		Layout:   services.NewLayoutService(events, settings),
		Admin:    services.NewAdminService(events, settings, messages, memrepo.Diagnostics{}, timeout),
	}, Options{PublicDir: publicDir, MaxUploadMB: 1}, zerolog.Nop())
	return &testServer{app: app, publicDir: publicDir, objects: objects, cleanup: cleanup}
}

type response struct {
	Status int
	Header http.Header
	Body   map[string]any
	Raw    []byte
}

func (s *testServer) do(t *testing.T, req *http.Request) response {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := response{Status: resp.StatusCode, Header: resp.Header, Raw: raw}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out.Body))
	}
	return out
}

func (s *testServer) json(t *testing.T, method, path, token string, body any) response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(t, req)
}

// adminToken registers the bootstrap admin and logs in.
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	creds := map[string]string{"email": "dj@example.com", "password": "secret1"}
	res := s.json(t, "POST", "/api/register", "", creds)
	require.Equal(t, 201, res.Status, string(res.Raw))
	res = s.json(t, "POST", "/api/auth/login", "", creds)
	require.Equal(t, 200, res.Status, string(res.Raw))
	return res.Body["accessToken"].(string)
}

func eventBody() map[string]any {
	return map[string]any{
		"name":      "Sunset",
		"address":   "Harbour 5",
		"date":      "2024-07-01",
		"startTime": "22:00",
		"endTime":   "04:00",
		"concept":   "Open air",
		"type":      "niceText",
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	res := s.do(t, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "ok", string(res.Raw))
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	res := s.json(t, "POST", "/api/get-events", "", nil)
	assert.Equal(t, 405, res.Status)
	assert.Equal(t, "Method not allowed", res.Body["message"])
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	s := newTestServer(t)

	res := s.json(t, "POST", "/api/add-event", "", eventBody())
	assert.Equal(t, 401, res.Status)
	assert.Equal(t, "Authentication required", res.Body["message"])

	res = s.json(t, "GET", "/api/all-messages", "not-a-token", nil)
	assert.Equal(t, 401, res.Status)

	res = s.json(t, "GET", "/api/get-system-settings", "", nil)
	assert.Equal(t, 401, res.Status)
}

func TestEventLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	res := s.json(t, "POST", "/api/add-event", token, eventBody())
	require.Equal(t, 200, res.Status, string(res.Raw))
	assert.Equal(t, "Event added successfully", res.Body["message"])
	id := res.Body["event"].(string)

	res = s.json(t, "GET", "/api/get-events", "", nil)
	require.Equal(t, 200, res.Status)
	events := res.Body["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].(map[string]any)["_id"])
	assert.Equal(t, "My Event Site", res.Body["systemSettings"].(map[string]any)["siteTitle"])

	res = s.json(t, "PUT", "/api/update-event", token, map[string]any{"_id": id})
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "No changes made to event", res.Body["message"])

	res = s.json(t, "PUT", "/api/update-event", token, map[string]any{"_id": id, "concept": "Warehouse"})
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Event updated successfully", res.Body["message"])
	assert.Equal(t, "Warehouse", res.Body["event"].(map[string]any)["concept"])

	res = s.json(t, "DELETE", "/api/delete-event", token, map[string]any{"_id": id})
	require.Equal(t, 200, res.Status)
	assert.Equal(t, id, res.Body["deletedEventId"])

	res = s.json(t, "DELETE", "/api/delete-event", token, map[string]any{"_id": id})
	assert.Equal(t, 404, res.Status)
	assert.Equal(t, "Event not found", res.Body["message"])

	res = s.json(t, "DELETE", "/api/delete-event", token, map[string]any{})
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "Event ID is required", res.Body["message"])
}

func TestAddEventValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	body := eventBody()
	delete(body, "address")
	res := s.json(t, "POST", "/api/add-event", token, body)
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "Address is required", res.Body["message"])
}

func multipartEvent(t *testing.T, fields map[string]any, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v.(string)))
	}
	if image != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="image"; filename="flyer.jpg"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestAddEventWithImageServesMedia(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	body, contentType := multipartEvent(t, eventBody(), []byte("jpeg-bytes"))
	req := httptest.NewRequest("POST", "/api/add-event", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	res := s.do(t, req)
	require.Equal(t, 200, res.Status, string(res.Raw))

	paths := s.objects.Paths()
	require.Len(t, paths, 1)
	assert.Regexp(t, `^events/Sunset_\d+\.jpg$`, paths[0])

	list := s.json(t, "GET", "/api/get-events", "", nil)
	image := list.Body["events"].([]any)[0].(map[string]any)["image"].(string)
	assert.Regexp(t, `^/media/events/Sunset_\d+\.jpg$`, image)

	media := s.do(t, httptest.NewRequest("GET", image, nil))
	assert.Equal(t, 200, media.Status)
	assert.Equal(t, "image/jpeg", media.Header.Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", string(media.Raw))

	missing := s.do(t, httptest.NewRequest("GET", "/media/events/none.jpg", nil))
	assert.Equal(t, 404, missing.Status)
}

func TestUpdateEventMultipartKeepsAbsentFields(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)
	res := s.json(t, "POST", "/api/add-event", token, eventBody())
	require.Equal(t, 200, res.Status)
	id := res.Body["event"].(string)

	body, contentType := multipartEvent(t, map[string]any{"_id": id, "name": "Sunrise"}, []byte("new"))
	req := httptest.NewRequest("PUT", "/api/update-event", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	res = s.do(t, req)
	require.Equal(t, 200, res.Status, string(res.Raw))

	event := res.Body["event"].(map[string]any)
	assert.Equal(t, "Sunrise", event["name"])
	assert.Equal(t, "Harbour 5", event["address"])
	assert.Contains(t, event["image"], "/media/events/Sunrise_")
}

func TestMessages(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	res := s.json(t, "POST", "/api/add-message", "", map[string]string{"name": "A", "email": "not-an-email", "message": "hi"})
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "Invalid email format", res.Body["message"])

	res = s.json(t, "POST", "/api/add-message", "", map[string]string{"name": "A", "email": "A@B.co", "message": "hi"})
	require.Equal(t, 201, res.Status)
	id := res.Body["messageId"].(string)

	for _, path := range []string{"/api/all-messages", "/api/get-messages"} {
		res = s.json(t, "GET", path, token, nil)
		require.Equal(t, 200, res.Status)
		msgs := res.Body["messages"].([]any)
		require.Len(t, msgs, 1)
		assert.Equal(t, "a@b.co", msgs[0].(map[string]any)["email"])
	}

	res = s.json(t, "PUT", "/api/update-message-status", token, map[string]string{"messageId": id, "status": "read"})
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "read", res.Body["status"])

	res = s.json(t, "PUT", "/api/update-message-status", token, map[string]string{"messageId": id, "status": "spam"})
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, `Status must be "new" or "read"`, res.Body["message"])

	res = s.json(t, "DELETE", "/api/delete-message", token, map[string]string{"messageId": id})
	require.Equal(t, 200, res.Status)
	assert.Equal(t, id, res.Body["deletedMessageId"])

	res = s.json(t, "DELETE", "/api/delete-message", token, map[string]string{"messageId": id})
	assert.Equal(t, 404, res.Status)
}

func TestSettings(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	update := map[string]any{
		"soundcloudLinks": []map[string]string{{"title": "Set", "url": "https://soundcloud.com/dj/set"}},
		"youtubeLink":     "https://youtu.be/abc123",
		"contactEmail":    "private@dj.com",
		"theme":           "Dark",
	}
	res := s.json(t, "PUT", "/api/update-system-settings", token, update)
	require.Equal(t, 200, res.Status, string(res.Raw))
	assert.Equal(t, "System settings updated successfully", res.Body["message"])

	res = s.json(t, "GET", "/api/get-system-settings", token, nil)
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "private@dj.com", res.Body["settings"].(map[string]any)["contactEmail"])

	res = s.json(t, "GET", "/api/get-public-settings", "", nil)
	require.Equal(t, 200, res.Status)
	pub := res.Body["settings"].(map[string]any)
	assert.Equal(t, "https://youtu.be/abc123", pub["youtubeLink"])
	assert.NotContains(t, pub, "contactEmail")

	res = s.json(t, "PUT", "/api/update-system-settings", token, map[string]any{"theme": "Neon"})
	assert.Equal(t, 400, res.Status)
}

func TestLoginAndSession(t *testing.T) {
	s := newTestServer(t)
	s.adminToken(t)

	unknown := s.json(t, "POST", "/api/auth/login", "", map[string]string{"email": "ghost@example.com", "password": "secret1"})
	wrong := s.json(t, "POST", "/api/auth/login", "", map[string]string{"email": "dj@example.com", "password": "nope123"})
	assert.Equal(t, 401, unknown.Status)
	assert.Equal(t, 401, wrong.Status)
	assert.Equal(t, unknown.Raw, wrong.Raw)

	login := s.json(t, "POST", "/api/auth/login", "", map[string]string{"email": "DJ@example.com", "password": "secret1"})
	require.Equal(t, 200, login.Status)
	var session *http.Cookie
	for _, c := range (&http.Response{Header: login.Header}).Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest("GET", "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: session.Value})
	res := s.do(t, req)
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "admin", res.Body["user"].(map[string]any)["role"])

	res = s.json(t, "GET", "/api/auth/session", "", nil)
	assert.Equal(t, 401, res.Status)
}

func TestRegisterClosedAfterBootstrap(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	res := s.json(t, "POST", "/api/register", "", map[string]string{"email": "x@example.com", "password": "secret1"})
	assert.Equal(t, 401, res.Status)

	res = s.json(t, "POST", "/api/register", token, map[string]string{"email": "x@example.com", "password": "secret1"})
	assert.Equal(t, 201, res.Status)

	res = s.json(t, "POST", "/api/register", token, map[string]string{"email": "X@example.com", "password": "secret1"})
	assert.Equal(t, 409, res.Status)
	assert.Equal(t, "User with this email already exists", res.Body["message"])

	res = s.json(t, "POST", "/api/register", token, map[string]string{"email": "y@example.com", "password": "123"})
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "Password must be at least 6 characters long", res.Body["message"])
}

func TestAdminPageGate(t *testing.T) {
	s := newTestServer(t)

	res := s.do(t, httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, 302, res.Status)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	token := s.adminToken(t)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	res = s.do(t, req)
	assert.Equal(t, 200, res.Status)
	assert.Contains(t, string(res.Raw), "admin")
}

func TestScreenLayout(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)
	require.Equal(t, 200, s.json(t, "POST", "/api/add-event", token, eventBody()).Status)

	res := s.json(t, "GET", "/api/screen-layout?viewportHeight=1000&scrollY=1500", "", nil)
	require.Equal(t, 200, res.Status, string(res.Raw))
	frame := res.Body["frame"].(map[string]any)
	assert.Equal(t, 4.0, frame["sectionCount"])
	assert.Equal(t, 4500.0, frame["containerHeight"])
	assert.Equal(t, 3500.0, frame["contactScrollTarget"])
	offsets := frame["offsets"].([]any)
	assert.Equal(t, 0.0, offsets[1])

	res = s.json(t, "GET", "/api/screen-layout", "", nil)
	assert.Equal(t, 400, res.Status)
}

func TestDashboardSweepAndDiagnostics(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	res := s.json(t, "GET", "/api/admin/dashboard", token, nil)
	require.Equal(t, 200, res.Status)
	assert.Contains(t, res.Body, "settings")

	res = s.json(t, "POST", "/api/admin/storage-sweep", token, nil)
	require.Equal(t, 200, res.Status)
	assert.Equal(t, 0.0, res.Body["removed"])

	res = s.json(t, "GET", "/api/test-mongodb", token, nil)
	require.Equal(t, 200, res.Status)
	assert.Equal(t, true, res.Body["messagesCollectionExists"])

	res = s.json(t, "GET", "/api/test-mongodb", "", nil)
	assert.Equal(t, 401, res.Status)
}

func TestStaticDoesNotExposeAdminPage(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.publicDir, "index.html"), []byte("<h1>home</h1>"), 0o644))
	SetupStatic(s.app, s.publicDir)

	res := s.do(t, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, res.Status)
	assert.Contains(t, string(res.Raw), "home")

	for _, p := range []string{"/admin.html", "/ADMIN.html", "/admin.html/"} {
		res = s.do(t, httptest.NewRequest("GET", p, nil))
		assert.NotEqual(t, 200, res.Status, p)
		assert.NotContains(t, string(res.Raw), "<h1>admin</h1>", p)
	}

	// admins still reach the page through the gate only
	token := s.adminToken(t)
	req := httptest.NewRequest("GET", "/admin.html", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	res = s.do(t, req)
	assert.Equal(t, 404, res.Status)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	res = s.do(t, req)
	assert.Equal(t, 200, res.Status)
}
