package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

var (
	// ErrDuplicateCampaignName is returned when a campaign with the requested
	// name already exists, regardless of owner.
	ErrDuplicateCampaignName = errors.New("campaign name already exists")
	// ErrCampaignNotFound is returned for unknown campaign ids and for
	// campaigns the requesting user does not own.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidInput is returned when a numeric form field does not parse.
	ErrInvalidInput = errors.New("invalid input")
)

// CampaignWriter defines write operations for campaigns.
type CampaignWriter interface {
	Save(ctx context.Context, name string, playerCount, playerLevel int, completion bool, ownerID int64) (*models.CampaignDB, error)
}

// CampaignReader defines read operations for campaigns.
type CampaignReader interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.CampaignDB, error)
	GetByID(ctx context.Context, id int64) (*models.CampaignDB, error)
}

// PlayerReader defines read operations for players.
type PlayerReader interface {
	ListByCampaign(ctx context.Context, campaignID int64) ([]models.PlayerDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.PlayerDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CampaignService handles campaign operations and Kafka publishing. Every
// operation takes the owner's user id; callers resolve it from the session
// before reaching this layer.
type CampaignService struct {
	writeRepo   CampaignWriter
	readRepo    CampaignReader
	playerRepo  PlayerReader
	kafkaWriter KafkaWriter
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(writeRepo CampaignWriter, readRepo CampaignReader, playerRepo PlayerReader, kafkaWriter KafkaWriter) *CampaignService {
	return &CampaignService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		playerRepo:  playerRepo,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller's campaigns in insertion order. Campaigns of other
// owners are never included.
func (s *CampaignService) List(ctx context.Context, ownerID int64) ([]models.CampaignDB, error) {
	campaigns, err := s.readRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list campaigns", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return campaigns, nil
}

// Create parses the submitted form fields and persists a new campaign owned
// by the caller. The completion flag is true only for the literal string
// "True"; any other value means false. Player count and level must be valid
// integers.
func (s *CampaignService) Create(ctx context.Context, ownerID int64, name, count, level, completion string) (*models.CampaignDB, error) {
	playerCount, err := strconv.Atoi(count)
	if err != nil {
		return nil, ErrInvalidInput
	}
	playerLevel, err := strconv.Atoi(level)
	if err != nil {
		return nil, ErrInvalidInput
	}
	completed := completion == "True"

	campaign, err := s.writeRepo.Save(ctx, name, playerCount, playerLevel, completed, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("campaign name already exists", "name", name)
		return nil, ErrDuplicateCampaignName
	}
	if err != nil {
		logger.Log.Errorw("failed to save campaign", "name", name, "error", err)
		return nil, err
	}

	s.publishCreated(ctx, campaign)

	return campaign, nil
}

// Get returns a campaign and its players. Unknown ids and campaigns owned by
// someone else both report ErrCampaignNotFound, so foreign campaign ids are
// not confirmed to exist.
func (s *CampaignService) Get(ctx context.Context, ownerID, campaignID int64) (*models.CampaignDB, []models.PlayerDB, error) {
	campaign, err := s.readRepo.GetByID(ctx, campaignID)
	if err != nil {
		logger.Log.Errorw("failed to get campaign", "campaign_id", campaignID, "error", err)
		return nil, nil, err
	}
	if campaign == nil || campaign.OwnerID != ownerID {
		return nil, nil, ErrCampaignNotFound
	}

	players, err := s.playerRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		logger.Log.Errorw("failed to list players", "campaign_id", campaignID, "error", err)
		return nil, nil, err
	}

	return campaign, players, nil
}

// publishCreated publishes a campaign creation event to Kafka. Failures are
// logged and never surfaced to the caller.
func (s *CampaignService) publishCreated(ctx context.Context, campaign *models.CampaignDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "campaign_id", campaign.ID)
		return
	}

	event := models.CampaignEvent{
		EventID:    uuid.NewString(),
		Type:       models.EventTypeCampaignCreated,
		Timestamp:  time.Now().Unix(),
		CampaignID: campaign.ID,
		OwnerID:    campaign.OwnerID,
		Name:       campaign.Name,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal campaign event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish campaign event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("campaign event published", "event_id", event.EventID, "campaign_id", campaign.ID)
	}
}
