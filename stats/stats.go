// Package stats counts gateway events, commands and incidents, and optionally submits them to InfluxDB.
package stats

import (
	"context"
	"reflect"
	"runtime"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

// Client collects counters. A nil *Client is valid and discards everything.
type Client struct {
	// Write is nil if InfluxDB isn't configured; counters are still kept for the stats command.
	Write api.WriteAPI
	log   *zap.SugaredLogger

	start time.Time

	mu     sync.Mutex
	events map[string]uint32
	cmds   uint32

	// incidents counts outcomes by protection and stage, and is reset on every submission.
	incidents map[string]map[string]uint32
	// totals is never reset.
	totals Totals
}

// Totals are the counters since the bot started.
type Totals struct {
	Events    uint64
	Commands  uint64
	Incidents uint64
	Bans      uint64
	Failures  uint64
}

// Config configures InfluxDB submission.
type Config struct {
	URL          string
	Token        string
	Organization string
	Bucket       string
}

// New creates a new client. If cfg.URL is empty, nothing is submitted.
func New(cfg Config, log *zap.SugaredLogger) *Client {
	c := &Client{
		log:       log,
		start:     time.Now(),
		events:    make(map[string]uint32),
		incidents: make(map[string]map[string]uint32),
	}

	if cfg.URL != "" {
		c.Write = influxdb2.NewClientWithOptions(cfg.URL, cfg.Token,
			influxdb2.DefaultOptions().SetBatchSize(20)).WriteAPI(cfg.Organization, cfg.Bucket)
	}

	return c
}

// EventHandler handles arikawa events.
func (c *Client) EventHandler(ev interface{}) {
	c.RegisterEvent(reflect.ValueOf(ev).Elem().Type().Name())
}

// RegisterEvent registers an event name.
func (c *Client) RegisterEvent(name string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.events[name]++
	c.totals.Events++
	c.mu.Unlock()
}

// IncCommand increments the command count by one.
func (c *Client) IncCommand() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.cmds++
	c.totals.Commands++
	c.mu.Unlock()
}

// RegisterIncident records a handled protection event and the stage it ended in.
func (c *Client) RegisterIncident(protection, stage string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.incidents[protection]
	if !ok {
		m = make(map[string]uint32)
		c.incidents[protection] = m
	}
	m[stage]++

	switch stage {
	case "action_issued":
		c.totals.Incidents++
		c.totals.Bans++
	case "action_failed":
		c.totals.Incidents++
		c.totals.Failures++
	}
}

// Totals returns the counters since the bot started.
func (c *Client) Totals() Totals {
	if c == nil {
		return Totals{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals
}

// Uptime returns how long ago the client was created.
func (c *Client) Uptime() time.Duration {
	if c == nil {
		return 0
	}
	return time.Since(c.start)
}

// Run submits metrics every minute until ctx is cancelled.
func (c *Client) Run(ctx context.Context) {
	if c == nil || c.Write == nil {
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			go c.submit()
		case <-ctx.Done():
			c.Write.Flush()
			return
		}
	}
}

func (c *Client) submit() {
	c.log.Debug("Submitting metrics to InfluxDB")

	c.mu.Lock()
	var totalEvents uint32
	em := make(map[string]interface{}, len(c.events))
	for k, v := range c.events {
		totalEvents += v
		em[k] = v
		c.events[k] = 0
	}

	im := make(map[string]map[string]interface{}, len(c.incidents))
	for p, stages := range c.incidents {
		im[p] = make(map[string]interface{}, len(stages))
		for s, v := range stages {
			im[p][s] = v
		}
	}
	c.incidents = make(map[string]map[string]uint32)

	cmds := c.cmds
	c.cmds = 0
	c.mu.Unlock()

	now := time.Now()
	c.Write.WritePoint(influxdb2.NewPoint("events", nil, em, now))
	for p, fields := range im {
		c.Write.WritePoint(influxdb2.NewPoint("incidents", map[string]string{"protection": p}, fields, now))
	}

	data := map[string]interface{}{
		"events":   totalEvents,
		"commands": cmds,
	}
	for k, v := range System().Fields() {
		data[k] = v
	}

	c.Write.WritePoint(influxdb2.NewPoint("statistics", nil, data, now))
}

// SystemStats is a snapshot of process and host resource usage.
type SystemStats struct {
	Alloc      uint64
	Sys        uint64
	Goroutines int

	HostUsed        uint64
	HostTotal       uint64
	HostUsedPercent float64
	// CPU is the total host CPU usage, or -1 if it couldn't be read.
	CPU float64
}

// System reads the current resource usage. Reading CPU usage blocks for a second.
func System() SystemStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	s := SystemStats{
		Alloc:      ms.Alloc,
		Sys:        ms.Sys,
		Goroutines: runtime.NumGoroutine(),
		CPU:        -1,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.HostUsed = vm.Used
		s.HostTotal = vm.Total
		s.HostUsedPercent = vm.UsedPercent
	}

	if pc, err := cpu.Percent(time.Second, false); err == nil && len(pc) > 0 {
		s.CPU = pc[0]
	}

	return s
}

// Fields returns s as InfluxDB fields.
func (s SystemStats) Fields() map[string]interface{} {
	f := map[string]interface{}{
		"alloc":             s.Alloc,
		"sys":               s.Sys,
		"goroutines":        s.Goroutines,
		"total_sys":         s.HostUsed,
		"total_sys_percent": s.HostUsedPercent,
	}
	if s.CPU >= 0 {
		f["cpu"] = s.CPU
	}
	return f
}
