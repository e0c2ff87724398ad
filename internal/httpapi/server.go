// Package httpapi exposes the trip, block, and experience services
// over HTTP. The routes match what the planner's catalog client and
// saver expect: /api/experiences for catalog listing, /api/trips and
// /api/blocks for durable saves.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/sqlite"
	"github.com/wanderplan/wanderplan/pkg/catalog"
	"github.com/wanderplan/wanderplan/pkg/saver"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// Server routes HTTP requests to an attached backend.
type Server struct {
	backend *sqlite.Backend
	engine  *gin.Engine
}

// New builds a server over an attached backend. The backend must stay
// attached for the server's lifetime.
func New(backend *sqlite.Backend) *Server {
	s := &Server{backend: backend}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := engine.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/experiences", s.listExperiences)
		api.GET("/trips", s.listTrips)
		api.POST("/trips", s.createTrip)
		api.GET("/trips/:id/blocks", s.listBlocks)
		api.POST("/blocks", s.createBlock)
	}

	s.engine = engine
	return s
}

// Handler returns the routing handler, usable directly in tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

func (s *Server) listExperiences(c *gin.Context) {
	experiences, err := s.backend.Experiences()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	opts := catalog.ListOptions{Category: c.Query("category")}
	opts.Page, _ = strconv.Atoi(c.Query("page"))
	opts.Limit, _ = strconv.Atoi(c.Query("limit"))

	out, err := experiences.List(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []types.Experience{}
	}
	c.JSON(http.StatusOK, out)
}

// tripWire is the trip payload with dates as YYYY-MM-DD strings.
type tripWire struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Budget     float64 `json:"budget"`
	Visibility string  `json:"visibility,omitempty"`
}

func (s *Server) listTrips(c *gin.Context) {
	trips, err := s.backend.Trips()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	out, err := trips.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wires := make([]tripWire, 0, len(out))
	for _, t := range out {
		wires = append(wires, tripWire{
			ID:         t.ID,
			Name:       t.Name,
			Location:   t.Location,
			StartDate:  types.FormatDay(t.StartDate),
			EndDate:    types.FormatDay(t.EndDate),
			Budget:     t.Budget,
			Visibility: t.Visibility,
		})
	}
	c.JSON(http.StatusOK, wires)
}

func (s *Server) createTrip(c *gin.Context) {
	trips, err := s.backend.Trips()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	var wire tripWire
	if err := c.ShouldBindJSON(&wire); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := tripFromWire(wire)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := trips.Create(c.Request.Context(), trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wire.ID = id
	c.JSON(http.StatusCreated, wire)
}

func tripFromWire(wire tripWire) (*types.Trip, error) {
	trip := &types.Trip{
		Name:       wire.Name,
		Location:   wire.Location,
		Budget:     wire.Budget,
		Visibility: wire.Visibility,
	}
	if trip.Visibility == "" {
		trip.Visibility = types.VisibilityPrivate
	}

	var err error
	if wire.StartDate != "" {
		if trip.StartDate, err = types.ParseDay(wire.StartDate); err != nil {
			return nil, errors.New("startDate must be YYYY-MM-DD")
		}
	}
	if wire.EndDate != "" {
		if trip.EndDate, err = types.ParseDay(wire.EndDate); err != nil {
			return nil, errors.New("endDate must be YYYY-MM-DD")
		}
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	return trip, nil
}

// blockWire is the block payload with the day as a YYYY-MM-DD string.
type blockWire struct {
	ID             string  `json:"id,omitempty"`
	TripID         string  `json:"tripId"`
	ItemID         string  `json:"itemId"`
	ExperienceID   string  `json:"experienceId,omitempty"`
	ExperienceName string  `json:"experienceName"`
	Day            string  `json:"day"`
	StartTime      float64 `json:"startTime"`
	EndTime        float64 `json:"endTime"`
	Price          float64 `json:"price"`
	Category       string  `json:"category,omitempty"`
}

func (s *Server) createBlock(c *gin.Context) {
	blocks, err := s.backend.Blocks()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	var wire blockWire
	if err := c.ShouldBindJSON(&wire); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if wire.TripID == "" || wire.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tripId and itemId are required"})
		return
	}
	day, err := types.ParseDay(wire.Day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be YYYY-MM-DD"})
		return
	}

	id, err := blocks.Create(c.Request.Context(), saver.Block{
		TripID:         wire.TripID,
		ItemID:         wire.ItemID,
		ExperienceID:   wire.ExperienceID,
		ExperienceName: wire.ExperienceName,
		Day:            day,
		StartTime:      wire.StartTime,
		EndTime:        wire.EndTime,
		Price:          wire.Price,
		Category:       wire.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	wire.ID = id
	c.JSON(http.StatusCreated, wire)
}

func (s *Server) listBlocks(c *gin.Context) {
	blocks, err := s.backend.Blocks()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	out, err := blocks.ListByTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wires := make([]blockWire, 0, len(out))
	for _, b := range out {
		wires = append(wires, blockWire{
			ID:             b.ID,
			TripID:         b.TripID,
			ItemID:         b.ItemID,
			ExperienceID:   b.ExperienceID,
			ExperienceName: b.ExperienceName,
			Day:            types.FormatDay(b.Day),
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			Price:          b.Price,
			Category:       b.Category,
		})
	}
	c.JSON(http.StatusOK, wires)
}
