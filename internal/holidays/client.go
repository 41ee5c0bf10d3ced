// Package holidays загружает национальные праздники из внешнего REST API
// (формат BrasilAPI: GET {base}/{year} -> [{date, name, type}]).
package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	"github.com/Leganyst/agenda-platform/internal/log"
)

type apiHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type cacheEntry struct {
	items     []agenda.Holiday
	fetchedAt time.Time
}

// Client кэширует ответ по году. Ошибки сети не пробрасываются наверх:
// календарь рисуется без национальных праздников.
type Client struct {
	baseURL string
	http    *http.Client
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[int]cacheEntry
}

func NewClient(baseURL string, timeout, ttl time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		ttl:     ttl,
		now:     time.Now,
		cache:   make(map[int]cacheEntry),
	}
}

// National возвращает праздники года; при ошибке отдаёт пустой список.
func (c *Client) National(ctx context.Context, year int) []agenda.Holiday {
	if items, ok := c.cached(year); ok {
		return items
	}

	items, err := c.Fetch(ctx, year)
	if err != nil {
		log.Error("holidays fetch failed", err, "year", year)
		return nil
	}

	c.mu.Lock()
	c.cache[year] = cacheEntry{items: items, fetchedAt: c.now()}
	c.mu.Unlock()
	return items
}

func (c *Client) cached(year int) ([]agenda.Holiday, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.cache[year]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.items, true
}

// Fetch ходит в API без кэша.
func (c *Client) Fetch(ctx context.Context, year int) ([]agenda.Holiday, error) {
	if c.baseURL == "" {
		return nil, errors.New("holidays api url is empty")
	}

	url := c.baseURL + "/" + strconv.Itoa(year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("holidays api: %s", resp.Status)
	}

	var raw []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	items := make([]agenda.Holiday, 0, len(raw))
	for _, h := range raw {
		d, err := agenda.ParseDate(h.Date)
		if err != nil {
			log.Warn("holidays: skip invalid date", "date", h.Date, "name", h.Name)
			continue
		}
		items = append(items, agenda.Holiday{Date: d, Name: h.Name, Kind: agenda.HolidayNational})
	}

	log.Debug("holidays fetched", "year", year, "count", len(items))
	return items, nil
}
