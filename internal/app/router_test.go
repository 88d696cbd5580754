package app

import (
	dto "cardroom_backend/internal/api/dto/room"
	"cardroom_backend/internal/config"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/niuniu"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type storageCfg struct{}

func (storageCfg) Driver() string { return config.StorageMemory }

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte { return []byte("router-secret") }
func (jwtCfg) AccessTokenDuration() time.Duration { return time.Hour }

type rulesCfg struct{}

func (rulesCfg) DefaultBaseBet() float64 { return 10 }
func (rulesCfg) Niuniu() niuniu.Rules { return niuniu.Rules{} }
func (rulesCfg) Blackjack() blackjack.Rules { return blackjack.Rules{} }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sp := &ServiceProvider{
		storageCfg: storageCfg{},
		jwtCfg:     jwtCfg{},
		rulesCfg:   rulesCfg{},
	}
	srv := httptest.NewServer(sp.Router(context.Background()))
	t.Cleanup(srv.Close)
	return srv
}

// call отправляет запрос и декодирует ответ в out, если он передан
func call(t *testing.T, srv *httptest.Server, method, path, token, body string, out any) int {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return res.StatusCode
}

func TestRoomFlow(t *testing.T) {
	srv := newTestServer(t)

	var ann dto.SessionResponse
	if code := call(t, srv, http.MethodPost, "/rooms", "", `{"name":"Ann","game":"21"}`, &ann); code != http.StatusCreated {
		t.Fatalf("create status = %d", code)
	}
	if ann.AccessToken == "" || ann.Room.BaseBet != 10 {
		t.Fatalf("create = %+v", ann)
	}

	var bob dto.SessionResponse
	body := `{"room_id":"` + strings.ToLower(ann.Room.ID) + `","name":"Bob"}`
	if code := call(t, srv, http.MethodPost, "/rooms/join", "", body, &bob); code != http.StatusOK {
		t.Fatalf("join status = %d", code)
	}

	if code := call(t, srv, http.MethodGet, "/room", "", "", nil); code != http.StatusUnauthorized {
		t.Errorf("no token status = %d", code)
	}
	if code := call(t, srv, http.MethodPost, "/room/round/start", bob.AccessToken, "", nil); code != http.StatusForbidden {
		t.Errorf("player start status = %d", code)
	}

	var room dto.RoomResponse
	if code := call(t, srv, http.MethodPost, "/room/round/start", ann.AccessToken, "", &room); code != http.StatusOK {
		t.Fatalf("start status = %d", code)
	}
	if room.Status != "playing" || room.Draft == nil || len(room.Draft.Entries) != 1 {
		t.Fatalf("started room = %+v", room)
	}

	body = `{"player_id":"` + bob.PlayerID + `","outcome":"win"}`
	if code := call(t, srv, http.MethodPost, "/room/round/draft", ann.AccessToken, body, &room); code != http.StatusOK {
		t.Fatalf("draft status = %d", code)
	}
	body = `{"player_id":"` + bob.PlayerID + `","outcome":"maybe"}`
	if code := call(t, srv, http.MethodPost, "/room/round/draft", ann.AccessToken, body, nil); code != http.StatusBadRequest {
		t.Errorf("bad outcome status = %d", code)
	}

	if code := call(t, srv, http.MethodPost, "/room/round/submit", ann.AccessToken, "", &room); code != http.StatusOK {
		t.Fatalf("submit status = %d", code)
	}
	if len(room.Rounds) != 1 || room.Status != "waiting" {
		t.Fatalf("submitted room = %+v", room)
	}

	var settlement dto.SettlementResponse
	if code := call(t, srv, http.MethodGet, "/room/settlement", bob.AccessToken, "", &settlement); code != http.StatusOK {
		t.Fatalf("settlement status = %d", code)
	}
	want := dto.TransferResponse{From: "Ann", To: "Bob", Amount: 10}
	if !settlement.Balanced || len(settlement.Transfers) != 1 || settlement.Transfers[0] != want {
		t.Errorf("settlement = %+v", settlement)
	}

	if code := call(t, srv, http.MethodPost, "/room/end", ann.AccessToken, "", &settlement); code != http.StatusOK {
		t.Fatalf("end status = %d", code)
	}
	if code := call(t, srv, http.MethodPost, "/room/round/start", ann.AccessToken, "", nil); code != http.StatusConflict {
		t.Errorf("start after end status = %d", code)
	}

	var stats dto.StatsResponse
	if code := call(t, srv, http.MethodGet, "/stats", "", "", &stats); code != http.StatusOK {
		t.Fatalf("stats status = %d", code)
	}
	if stats.RoomsCreated["21"] != 1 || stats.RoundsSubmitted != 1 || stats.SessionsSettled != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestLeaveClearsCookie(t *testing.T) {
	srv := newTestServer(t)

	var ann dto.SessionResponse
	call(t, srv, http.MethodPost, "/rooms", "", `{"name":"Ann","game":"niuniu"}`, &ann)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/room/leave", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.AddCookie(&http.Cookie{Name: "access_token", Value: ann.AccessToken})
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("leave status = %d", res.StatusCode)
	}
	cleared := false
	for _, c := range res.Cookies() {
		if c.Name == "access_token" && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("access_token cookie not cleared")
	}
}

func TestCalcRoutes(t *testing.T) {
	srv := newTestServer(t)

	var out struct {
		PnL float64 `json:"pnl"`
	}
	code := call(t, srv, http.MethodPost, "/calc/pnl", "", `{"game":"niuniu","outcome":"niu9","bet":10}`, &out)
	if code != http.StatusOK || out.PnL != 30 {
		t.Errorf("pnl = %d %+v", code, out)
	}
	if code := call(t, srv, http.MethodGet, "/calc/outcomes?game=21", "", "", nil); code != http.StatusOK {
		t.Errorf("outcomes status = %d", code)
	}
}
