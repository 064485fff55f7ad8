// Command requester logs in as a rider and walks toward a target point,
// reporting a position on every step.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type session struct {
	Token string `json:"token"`
}

type position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "gateway base url")
	riderID := flag.Int64("rider", 7, "rider user id")
	fromLat := flag.Float64("from-lat", 24.8700, "start latitude")
	fromLon := flag.Float64("from-lon", 67.0100, "start longitude")
	toLat := flag.Float64("to-lat", 24.8607, "target latitude")
	toLon := flag.Float64("to-lon", 67.0011, "target longitude")
	steps := flag.Int("steps", 10, "number of steps")
	interval := flag.Duration("interval", time.Second, "delay between steps")
	flag.Parse()

	token, err := login(*baseURL, *riderID)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i <= *steps; i++ {
		f := float64(i) / float64(*steps)
		p := position{
			Latitude:  *fromLat + (*toLat-*fromLat)*f,
			Longitude: *fromLon + (*toLon-*fromLon)*f,
		}
		status, body, err := send(http.MethodPut, *baseURL+"/rider/position", token, p)
		if err != nil {
			log.Println("request failed:", err)
		} else {
			fmt.Printf("PUT /rider/position %.5f,%.5f -> %d %s", p.Latitude, p.Longitude, status, body)
		}
		time.Sleep(*interval)
	}

	status, body, err := send(http.MethodGet, *baseURL+"/rider/suborders", token, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("GET /rider/suborders -> %d %s", status, body)

	send(http.MethodDelete, *baseURL+"/sessions", token, nil)
}

func login(baseURL string, riderID int64) (string, error) {
	status, body, err := send(http.MethodPost, baseURL+"/sessions", "", map[string]any{"role": "rider", "user_id": riderID})
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("login failed: %d %s", status, body)
	}
	var s session
	if err := json.Unmarshal(body, &s); err != nil {
		return "", err
	}
	return s.Token, nil
}

func send(method, url, token string, payload any) (int, []byte, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return 0, nil, err
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes(), nil
}
