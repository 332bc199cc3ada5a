package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"todoapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultGreetingLang = "pl"
	defaultGreetingName = "Nieznajomy"
)

var greetingTemplates = map[string]string{
	"pl": "Cześć %s! Miło Cię poznać!",
	"en": "Hello %s! Nice to meet you!",
	"es": "¡Hola %s! ¡Encantado de conocerte!",
	"de": "Hallo %s! Schön dich kennenzulernen!",
}

// BasicHandler serves the endpoints that do not touch the store.
type BasicHandler struct {
	author   string
	location *time.Location
	counter  *services.VisitCounter
	now      func() time.Time
}

// NewBasicHandler creates a new BasicHandler.
func NewBasicHandler(author string, location *time.Location, counter *services.VisitCounter) *BasicHandler {
	if location == nil {
		location = time.Local
	}
	return &BasicHandler{
		author:   author,
		location: location,
		counter:  counter,
		now:      time.Now,
	}
}

// RegisterRoutes registers the basic routes with the Fiber app.
func (h *BasicHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleWelcome)
	router.Get("/about", h.HandleAbout)
	router.Get("/time", h.HandleTime)
	router.Get("/greeting", h.HandleGreeting)
	router.Get("/counter", h.HandleCounter)
	router.Post("/echo", h.HandleEcho)
	router.Get("/my-endpoint", h.HandleMyEndpoint)
}

// HandleWelcome returns the welcome payload.
func (h *BasicHandler) HandleWelcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Hello World!",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
		"author":    h.author,
	})
}

// HandleAbout returns the author card.
func (h *BasicHandler) HandleAbout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    h.author,
		"role":    "Praktykant",
		"company": "praktyki",
		"learningGoals": []string{
			"Nauczyć się REST API",
			"Poznać Go",
			"Opanować Postman",
		},
	})
}

// HandleTime returns the current time in several representations.
func (h *BasicHandler) HandleTime(c *fiber.Ctx) error {
	now := h.now().In(h.location)
	return c.JSON(fiber.Map{
		"currentTime": now.Format("15:04:05 GMT-0700 (MST)"),
		"currentDate": now.Format("Mon Jan 02 2006"),
		"timestamp":   now.UnixMilli(),
		"timezone":    h.timezoneName(now),
	})
}

func (h *BasicHandler) timezoneName(now time.Time) string {
	if h.location != time.Local {
		return h.location.String()
	}
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	name, _ := now.Zone()
	return name
}

// HandleGreeting greets name in lang, falling back to Polish for unknown languages.
func (h *BasicHandler) HandleGreeting(c *fiber.Ctx) error {
	name := c.Query("name", defaultGreetingName)
	lang := c.Query("lang", defaultGreetingLang)

	template, ok := greetingTemplates[lang]
	if !ok {
		template = greetingTemplates[defaultGreetingLang]
	}
	return c.JSON(fiber.Map{
		"greeting": fmt.Sprintf(template, name),
		"language": lang,
		"name":     name,
	})
}

// HandleCounter records a visit and reports the running total.
func (h *BasicHandler) HandleCounter(c *fiber.Ctx) error {
	visits := h.counter.Visit()
	return c.JSON(fiber.Map{
		"visits":  visits,
		"message": fmt.Sprintf("This is visit number %d", visits),
	})
}

// HandleEcho echoes any JSON document back to the caller.
func (h *BasicHandler) HandleEcho(c *fiber.Ctx) error {
	received, err := decodeJSONValue(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON format",
		})
	}
	return c.JSON(fiber.Map{
		"received": received,
		"echoTime": h.now().UTC().Format(time.RFC3339Nano),
		"message":  "Received your data!",
	})
}

// HandleMyEndpoint returns a fixed fun fact.
func (h *BasicHandler) HandleMyEndpoint(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "In 2009 Google wrote an algorithm that learned to play classic Pac-Man better than most people!",
		"hint":    "Modify this endpoint to serve your own idea",
	})
}

// decodeJSONValue parses exactly one JSON value, keeping numbers verbatim.
func decodeJSONValue(body []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
