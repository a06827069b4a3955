package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/apps/api/echo"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/user"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/storage/database/inmem"
	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/testutil"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type env struct {
	conf *core.Config
	db   *inmemdb.DB
	app  Server
}

func setup(t *testing.T) env {
	conf := testutil.NewConfig(t)
	conf.Server.DisableReqLogs = true

	// set up DB & repos
	db := inmemdb.Open()
	repo := inmemdb.NewRoutineRepository(db)

	// set up services
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	routine.InitValidators(validate, translator)

	// set up server
	app := NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     testutil.NewLogger(conf),
			RoutineSvc: testutil.NewRoutineService(t, repo, conf),
			Validate:   validate,
			Translator: translator,
		},
	)
	return env{conf: conf, db: db, app: app}
}

type httpErr struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, roles ...string) string {
	usr := user.User{ID: "1", Username: "tester", Email: "tester@ruet.ac.bd", Roles: roles}
	token, err := GenerateToken(conf, GetUserClaims(conf, usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code)
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func run(t *testing.T, app Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
