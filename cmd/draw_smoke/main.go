package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// draw_smoke plays one game end to end against a running game authority:
// it follows the draw feed, registers players and draws until someone
// has bingo or the numbers run out.
func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "game authority host:port")
	players := flag.Int("players", 2, "players to register")
	flag.Parse()

	base := "http://" + *addr
	httpc := &http.Client{Timeout: 10 * time.Second}

	var created struct {
		GameID string `json:"game_id"`
	}
	mustPost(httpc, base+"/games", map[string]any{"game_name": "smoke " + time.Now().Format(time.Kitchen)}, &created)
	log.Printf("game created: %s", created.GameID)

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	feedURL := url.URL{Scheme: "ws", Host: *addr, Path: "/games/" + created.GameID + "/feed"}
	conn, _, err := websocket.DefaultDialer.Dial(feedURL.String(), nil)
	if err != nil {
		log.Fatalf("dial feed: %v", err)
	}
	defer conn.Close()

	feed := make(chan string, 128)
	go func() {
		defer close(feed)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			feed <- string(msg)
		}
	}()

	ids := make([]string, 0, *players)
	for i := 0; i < *players; i++ {
		var reg struct {
			PlayerID    string `json:"player_id"`
			CardNumbers []int  `json:"card_numbers"`
			Success     bool   `json:"success"`
		}
		mustPost(httpc, base+"/games/"+created.GameID+"/players", map[string]any{"player_name": fmt.Sprintf("smoke-%d", i)}, &reg)
		if !reg.Success {
			log.Fatalf("register player %d failed", i)
		}
		log.Printf("player %s card %v", reg.PlayerID, reg.CardNumbers)
		ids = append(ids, reg.PlayerID)
	}

	for round := 1; ; round++ {
		var draw struct {
			Number  int  `json:"number"`
			Success bool `json:"success"`
		}
		mustPost(httpc, base+"/games/"+created.GameID+"/draw", nil, &draw)
		if !draw.Success {
			log.Printf("no more numbers after %d draws", round-1)
			break
		}

		for _, id := range ids {
			var mark struct {
				Success bool `json:"success"`
			}
			mustPost(httpc, base+"/games/"+created.GameID+"/players/"+id+"/mark", map[string]any{"number": draw.Number}, &mark)
		}

		winner := ""
		for _, id := range ids {
			var check struct {
				Bingo bool `json:"bingo"`
			}
			mustGet(httpc, base+"/games/"+created.GameID+"/bingo?player_id="+url.QueryEscape(id), &check)
			if check.Bingo {
				winner = id
				break
			}
		}
		if winner != "" {
			log.Printf("bingo for %s after %d draws", winner, round)
			break
		}
	}

	drain := time.After(500 * time.Millisecond)
	frames := 0
	for {
		select {
		case _, ok := <-feed:
			if !ok {
				log.Printf("feed closed after %d frames", frames)
				return
			}
			frames++
		case <-drain:
			log.Printf("feed delivered %d frames", frames)
			log.Println("smoke test finished")
			return
		}
	}
}

func mustPost(c *http.Client, url string, body, out any) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("encode %s: %v", url, err)
		}
	}
	resp, err := c.Post(url, "application/json", &buf)
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode %s: %v", url, err)
	}
}

func mustGet(c *http.Client, url string, out any) {
	resp, err := c.Get(url)
	if err != nil {
		log.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode %s: %v", url, err)
	}
}
