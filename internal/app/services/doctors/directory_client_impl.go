package doctors

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type directoryClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewDirectoryClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DoctorDirectoryClient {
	return &directoryClient{
		baseURL: internalConfig.Directory.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Directory.TimeoutSeconds) * time.Second,
		},
		log: logger,
	}
}

// directoryDoctor is the loosely-typed upstream shape; normalization into a
// strict models.Doctor happens here at the boundary.
type directoryDoctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Speciality     string   `json:"speciality"`
	Experience     int      `json:"experience"`
	Ratings        float64  `json:"ratings"`
	ProfilePic     string   `json:"profilePic"`
	Location       string   `json:"location"`
	AvailableSlots []string `json:"availableSlots"`
}

func (c *directoryClient) FetchDoctors(ctx context.Context) ([]models.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrDirectoryFetch(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrDirectoryBadStatus(resp.StatusCode)
	}

	var payload []directoryDoctor
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, exceptions.ErrDirectoryBadPayload(err)
	}

	doctors := make([]models.Doctor, 0, len(payload))
	for _, entry := range payload {
		doctors = append(doctors, c.normalize(entry))
	}
	return doctors, nil
}

func (c *directoryClient) normalize(entry directoryDoctor) models.Doctor {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("%s%s", constvars.DoctorGeneratedIDPrefix, uuid.NewString())
		c.log.Warn("directory entry missing id, generated one",
			zap.String(constvars.LoggingDoctorIDKey, entry.ID),
			zap.String(constvars.LoggingDoctorNameKey, entry.Name),
		)
	}
	if entry.Name == "" {
		entry.Name = constvars.DoctorNamePlaceholder
	}
	if entry.Speciality == "" {
		entry.Speciality = constvars.DoctorSpecialityPlaceholder
	}
	return models.Doctor{
		ID:             entry.ID,
		Name:           entry.Name,
		Speciality:     entry.Speciality,
		Experience:     entry.Experience,
		Ratings:        entry.Ratings,
		ProfilePic:     entry.ProfilePic,
		Location:       entry.Location,
		AvailableSlots: entry.AvailableSlots,
	}
}
