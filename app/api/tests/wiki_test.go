package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/encyclopedia/app/api/handlers"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/entries"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/wiki"
	"github.com/ribgsilva/encyclopedia/app/api/web"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/business/v1/markup"
	pentry "github.com/ribgsilva/encyclopedia/persistence/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/env"
	"github.com/ribgsilva/encyclopedia/platform/logger"
	"github.com/ribgsilva/encyclopedia/sys"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

type WikiTests struct {
	app   http.Handler
	store pentry.Store
	cache *miniredis.Miniredis
	sub   *pubsub.Subscription
}

// fixedRand always draws i
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func TestWiki(t *testing.T) {
	log, err := logger.New("Encyclopedia-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Store.Driver = "blob"
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.Enabled = true
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Messaging.PublishTimeout = env.DurationDefault(log, "MESSAGING_PUBLISH_TIMEOUT", "5s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// bucket
	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()
	sys.R.Bucket = bucket

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr: sys.Configs.Cache.ConnectionURL,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb
	defer func() { sys.R.Cache = nil }()

	// topic
	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, time.Minute)
	defer func() {
		_ = subscription.Shutdown(context.Background())
	}()
	sys.R.Topic = topic
	defer func() { sys.R.Topic = nil }()

	// =======================================================================================================
	// Store setup

	store, err := pentry.Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []entry.Entry{
		{Title: "Java", Content: "# Java\n\nJava is a language."},
		{Title: "Python", Content: "# Python\n\n* simple\n* readable"},
		{Title: "Ruby", Content: "# Ruby"},
	} {
		if err := store.Put(context.Background(), e.Title, e.Content); err != nil {
			t.Fatalf("store.Put: Error: %s\n", err)
		}
	}

	// =======================================================================================================
	// Setup router
	engine, err := newEngine(store, fixedRand(1))
	if err != nil {
		t.Fatal(err)
	}

	tests := WikiTests{
		app:   engine,
		store: store,
		cache: s,
		sub:   subscription,
	}

	// =======================================================================================================
	// Run tests

	tests.index200(t)
	tests.view200(t)
	tests.view404(t)
	tests.viewPost302(t)
	tests.searchForm200(t)
	tests.searchExact302(t)
	tests.searchSubstring200(t)
	tests.searchNoResults200(t)
	tests.searchEmpty400(t)
	tests.searchTerm302(t)
	tests.new302(t)
	tests.newDuplicate409(t)
	tests.newInvalid400(t)
	tests.editForm200(t)
	tests.edit302(t)
	tests.editAbsentCreates(t)
	tests.random302(t)
	tests.apiList200(t)
	tests.apiGet200(t)
	tests.apiGet404(t)
	tests.apiSearch200(t)
	tests.healthcheck200(t)
}

func TestWikiEmpty(t *testing.T) {
	log, err := logger.New("Encyclopedia-API-Tests")
	if err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	sys.R.Log = log

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	engine, err := newEngine(pentry.Blob{Bucket: bucket}, entry.DefaultRand())
	if err != nil {
		t.Fatal(err)
	}

	w := do(engine, http.MethodGet, "/random", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test randomEmpty: Should receive a status code of 404 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No entries yet.") {
		t.Fatalf("Test randomEmpty: Should render the no entries message : %s", w.Body.String())
	}

	w = do(engine, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "No entries yet.") {
		t.Fatalf("Test indexEmpty: Should render an empty listing : %v %s", w.Code, w.Body.String())
	}
}

func newEngine(store entry.Store, rnd entry.Rand) (*gin.Engine, error) {
	renderer, err := web.Renderer()
	if err != nil {
		return nil, err
	}
	engine := gin.New()
	engine.HTMLRender = renderer

	handlers.MapDefaults(engine)
	handlers.MapApi(engine, store)
	handlers.MapWiki(engine, wiki.Wiki{Entries: store, Rand: rnd})
	return engine, nil
}

func do(app http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	return w
}

func (wt *WikiTests) expectSaved(t *testing.T, name, title string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m, err := wt.sub.Receive(ctx)
	if err != nil {
		t.Fatalf("Test %s: Should have published an event : %v", name, err)
	}
	m.Ack()

	var e struct {
		Type string      `json:"type"`
		Data entry.Saved `json:"data"`
	}
	if err := json.Unmarshal(m.Body, &e); err != nil {
		t.Fatalf("Test %s: Should be able to unmarshal the event : %v", name, err)
	}
	if e.Type != entry.EventSaved || e.Data.Title != title {
		t.Fatalf("Test %s: Should have published %s saved : %+v", name, title, e)
	}
}

func (wt *WikiTests) content(t *testing.T, title string) (string, bool) {
	c, found, err := wt.store.Get(context.Background(), title)
	if err != nil {
		t.Fatal(err)
	}
	return c, found
}

func (wt *WikiTests) index200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test index200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	for _, title := range []string{"Java", "Python", "Ruby"} {
		if !strings.Contains(w.Body.String(), `<a href="/wiki/`+title+`">`+title+`</a>`) {
			t.Fatalf("Test index200: Should have listed %s : %s", title, w.Body.String())
		}
	}
}

func (wt *WikiTests) view200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/wiki/Python", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test view200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<h1 id="python">Python</h1>`) || !strings.Contains(body, "<li>readable</li>") {
		t.Fatalf("Test view200: Should have rendered the markdown : %s", body)
	}
	if !strings.Contains(body, `<form action="/wiki/Python" method="post">`) {
		t.Fatalf("Test view200: Should offer the edit button : %s", body)
	}

	content, _ := wt.content(t, "Python")
	if !wt.cache.Exists("entries.html." + markup.Key(content)) {
		t.Fatalf("Test view200: rendered Python not in cache")
	}
}

func (wt *WikiTests) view404(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/wiki/python", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Test view404: Should receive a status code of 404 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page not found.") {
		t.Fatalf("Test view404: Should render the not found message : %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), `class="entry"`) {
		t.Fatalf("Test view404: Should never render an entry : %s", w.Body.String())
	}
}

func (wt *WikiTests) viewPost302(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/wiki/Python", url.Values{})

	if w.Code != http.StatusFound {
		t.Fatalf("Test viewPost302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/edit?title=Python" {
		t.Fatalf("Test viewPost302: Should redirect to the edit form : %s", loc)
	}
}

func (wt *WikiTests) searchForm200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/search", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test searchForm200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if strings.Contains(w.Body.String(), "No results.") {
		t.Fatalf("Test searchForm200: Should not show results before searching : %s", w.Body.String())
	}
}

func (wt *WikiTests) searchExact302(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/search", url.Values{"search": {"Python"}})

	if w.Code != http.StatusFound {
		t.Fatalf("Test searchExact302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/wiki/Python" {
		t.Fatalf("Test searchExact302: Should redirect to the entry : %s", loc)
	}
}

func (wt *WikiTests) searchSubstring200(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/search", url.Values{"search": {"Py"}})

	if w.Code != http.StatusOK {
		t.Fatalf("Test searchSubstring200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<a href="/wiki/Python">Python</a>`) {
		t.Fatalf("Test searchSubstring200: Should list Python : %s", body)
	}
	if strings.Contains(body, `<a href="/wiki/Java">`) || strings.Contains(body, "No results.") {
		t.Fatalf("Test searchSubstring200: Should list Python only : %s", body)
	}
}

func (wt *WikiTests) searchNoResults200(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/search", url.Values{"search": {"Zzz"}})

	if w.Code != http.StatusOK {
		t.Fatalf("Test searchNoResults200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No results.") {
		t.Fatalf("Test searchNoResults200: Should show the no results indicator : %s", w.Body.String())
	}
}

func (wt *WikiTests) searchEmpty400(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/search", url.Values{"search": {"  "}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test searchEmpty400: Should receive a status code of 400 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "This field is required.") {
		t.Fatalf("Test searchEmpty400: Should show the validation feedback : %s", w.Body.String())
	}
}

func (wt *WikiTests) searchTerm302(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/search?search_term=Ruby", nil)

	if w.Code != http.StatusFound {
		t.Fatalf("Test searchTerm302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/wiki/Ruby" {
		t.Fatalf("Test searchTerm302: Should redirect to the entry : %s", loc)
	}
}

func (wt *WikiTests) new302(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/new", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test new302: Should receive a status code of 200 for the form : %v", w.Code)
	}

	w = do(wt.app, http.MethodPost, "/new", url.Values{"title": {"Hello World"}, "content": {"# Hello"}})

	if w.Code != http.StatusFound {
		t.Fatalf("Test new302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/wiki/Hello%20World" {
		t.Fatalf("Test new302: Should redirect to the new entry : %s", loc)
	}
	if content, found := wt.content(t, "Hello World"); !found || content != "# Hello" {
		t.Fatalf("Test new302: Should have stored the entry : %q", content)
	}
	wt.expectSaved(t, "new302", "Hello World")

	w = do(wt.app, http.MethodGet, "/wiki/Hello%20World", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test new302: Should follow the redirect to the new entry : %v", w.Code)
	}
}

func (wt *WikiTests) newDuplicate409(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/new", url.Values{"title": {"Java"}, "content": {"overwritten"}})

	if w.Code != http.StatusConflict {
		t.Fatalf("Test newDuplicate409: Should receive a status code of 409 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page with same title already exists.") {
		t.Fatalf("Test newDuplicate409: Should render the duplicate message : %s", w.Body.String())
	}
	if content, _ := wt.content(t, "Java"); content != "# Java\n\nJava is a language." {
		t.Fatalf("Test newDuplicate409: Should not have touched Java : %q", content)
	}
}

func (wt *WikiTests) newInvalid400(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/new", url.Values{"title": {"Go"}, "content": {""}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test newInvalid400: Should receive a status code of 400 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "This field is required.") || !strings.Contains(w.Body.String(), `value="Go"`) {
		t.Fatalf("Test newInvalid400: Should redisplay the form with feedback : %s", w.Body.String())
	}
	if _, found := wt.content(t, "Go"); found {
		t.Fatalf("Test newInvalid400: Should not have stored Go")
	}
}

func (wt *WikiTests) editForm200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/edit?title=Ruby", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test editForm200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "# Ruby</textarea>") {
		t.Fatalf("Test editForm200: Should prefill the content : %s", w.Body.String())
	}

	w = do(wt.app, http.MethodGet, "/edit?title=Nothing", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test editForm200: Should render an empty form for an absent entry : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "></textarea>") {
		t.Fatalf("Test editForm200: Should have an empty content : %s", w.Body.String())
	}
}

func (wt *WikiTests) edit302(t *testing.T) {
	w := do(wt.app, http.MethodPost, "/edit", url.Values{"title": {"Ruby"}, "content": {"# Ruby 3"}})

	if w.Code != http.StatusFound {
		t.Fatalf("Test edit302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/wiki/Ruby" {
		t.Fatalf("Test edit302: Should redirect to the entry : %s", loc)
	}
	if content, _ := wt.content(t, "Ruby"); content != "# Ruby 3" {
		t.Fatalf("Test edit302: Should have overwritten Ruby : %q", content)
	}
	wt.expectSaved(t, "edit302", "Ruby")

	w = do(wt.app, http.MethodGet, "/wiki/Ruby", nil)
	if !strings.Contains(w.Body.String(), "Ruby 3</h1>") {
		t.Fatalf("Test edit302: Should render the new content : %s", w.Body.String())
	}
}

func (wt *WikiTests) editAbsentCreates(t *testing.T) {
	before, _ := wt.store.List(context.Background())

	w := do(wt.app, http.MethodPost, "/edit", url.Values{"title": {"Rust"}, "content": {"# Rust"}})
	if w.Code != http.StatusFound {
		t.Fatalf("Test editAbsentCreates: Should receive a status code of 302 for the response : %v", w.Code)
	}
	wt.expectSaved(t, "editAbsentCreates", "Rust")

	after, _ := wt.store.List(context.Background())
	if len(after) != len(before)+1 {
		t.Fatalf("Test editAbsentCreates: Should have added one entry : %v -> %v", before, after)
	}
	if exists, _ := wt.store.Exists(context.Background(), "Rust"); !exists {
		t.Fatalf("Test editAbsentCreates: Rust should exist")
	}
}

func (wt *WikiTests) random302(t *testing.T) {
	titles, _ := wt.store.List(context.Background())
	w := do(wt.app, http.MethodGet, "/random", nil)

	if w.Code != http.StatusFound {
		t.Fatalf("Test random302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/wiki/"+url.PathEscape(titles[1]) {
		t.Fatalf("Test random302: Should redirect to %s : %s", titles[1], loc)
	}
}

func (wt *WikiTests) apiList200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/v1/entries", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test apiList200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp []string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test apiList200: Should be able to unmarshal the response : %v", err)
	}
	titles, _ := wt.store.List(context.Background())
	if !reflect.DeepEqual(resp, titles) {
		t.Fatalf("Test apiList200: Should have listed every entry : %v", resp)
	}
}

func (wt *WikiTests) apiGet200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/v1/entries/Java", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test apiGet200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp entries.Entry
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test apiGet200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Title != "Java" {
		t.Fatalf("Test apiGet200: Should have received \"Java\" as title in the response: %v", resp)
	}
	if resp.Content != "# Java\n\nJava is a language." {
		t.Fatalf("Test apiGet200: Should have received the raw content in the response: %v", resp)
	}
	if !strings.Contains(resp.HTML, "<p>Java is a language.</p>") {
		t.Fatalf("Test apiGet200: Should have received the html in the response: %v", resp)
	}
}

func (wt *WikiTests) apiGet404(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/v1/entries/Cobol", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Test apiGet404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (wt *WikiTests) apiSearch200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/v1/search?q=y", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test apiSearch200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	var resp entry.SearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test apiSearch200: Should be able to unmarshal the response : %v", err)
	}
	if !reflect.DeepEqual(resp.Matches, []string{"Python", "Ruby"}) || resp.NoResults {
		t.Fatalf("Test apiSearch200: Should have matched Python and Ruby : %+v", resp)
	}

	w = do(wt.app, http.MethodGet, "/v1/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test apiSearch200: Should receive a status code of 400 without a query : %v", w.Code)
	}
}

func (wt *WikiTests) healthcheck200(t *testing.T) {
	w := do(wt.app, http.MethodGet, "/v1/healthcheck", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck200: Should receive a status code of 200 for the response : %v", w.Code)
	}
}
