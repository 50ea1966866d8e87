package job

import (
	"circle/internal/pkg/consts"
	"circle/internal/pkg/logger"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/redis"
	"circle/internal/repository"
	"circle/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	digestUserBatch     = 500
	digestCampaignBatch = 100
)

// WeeklyDigestJob sends every member their weekly unread summary and
// recounts campaign totals against the pledge rows while it is at it.
type WeeklyDigestJob struct {
	userRepo         repository.UserRepo
	campaignRepo     repository.CampaignRepo
	pledgeRepo       repository.PledgeRepo
	notificationRepo mongo.NotificationRepo
	notificationSvc  service.NotificationService
}

func NewWeeklyDigestJob(
	userRepo repository.UserRepo,
	campaignRepo repository.CampaignRepo,
	pledgeRepo repository.PledgeRepo,
	notificationRepo mongo.NotificationRepo,
	notificationSvc service.NotificationService,
) *WeeklyDigestJob {
	return &WeeklyDigestJob{
		userRepo:         userRepo,
		campaignRepo:     campaignRepo,
		pledgeRepo:       pledgeRepo,
		notificationRepo: notificationRepo,
		notificationSvc:  notificationSvc,
	}
}

func (s *WeeklyDigestJob) Run() {
	traceID := "job-digest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// only one instance runs the digest per window
	locked, err := redis.TryLock(ctx, consts.DigestLock, traceID, time.Hour, 1)
	if err != nil {
		log.ErrorContext(ctx, "digest lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "digest already running elsewhere, skipping")
		return
	}
	defer redis.UnLock(ctx, consts.DigestLock, traceID)

	start := time.Now()
	sent := s.sendUnreadDigests(ctx)
	fixed := s.recountCampaigns(ctx)
	log.InfoContext(ctx, "weekly digest finished",
		"digests_sent", sent, "campaigns_corrected", fixed, "took", time.Since(start))
}

func (s *WeeklyDigestJob) sendUnreadDigests(ctx context.Context) int {
	sent := 0
	var afterID uint64
	for {
		ids, err := s.userRepo.GetIDsAfter(ctx, afterID, digestUserBatch)
		if err != nil {
			log.ErrorContext(ctx, "digest user page error", "after_id", afterID, "err", err)
			return sent
		}
		if len(ids) == 0 {
			return sent
		}

		for _, uid := range ids {
			unread, err := s.notificationRepo.GetUnreadCount(ctx, uid)
			if err != nil {
				log.ErrorContext(ctx, "digest unread count error", "uid", uid, "err", err)
				continue
			}
			if unread == 0 {
				continue
			}

			s.notificationSvc.Dispatch(ctx, &mongo.NotificationModel{
				ReceiverID: uid,
				Type:       mongo.TypeWeeklyDigest,
				Title:      "Your week on Circle",
				Content:    fmt.Sprintf("You have %d unread notifications waiting for you.", unread),
				Payload:    map[string]any{"unread_count": unread},
				CreatedAt:  time.Now(),
			})
			sent++
		}

		afterID = ids[len(ids)-1]
	}
}

// recountCampaigns compares each active campaign's cached total with the
// sum of its pledge rows and rewrites the cache when they disagree. The
// hot-path accounting runs without a transaction, so small drift is
// expected and healed here.
func (s *WeeklyDigestJob) recountCampaigns(ctx context.Context) int {
	fixed := 0
	offset := 0
	for {
		campaigns, err := s.campaignRepo.GetActive(ctx, digestCampaignBatch, offset)
		if err != nil {
			log.ErrorContext(ctx, "digest campaign page error", "offset", offset, "err", err)
			return fixed
		}
		if len(campaigns) == 0 {
			return fixed
		}

		for _, c := range campaigns {
			total, err := s.pledgeRepo.SumByCampaign(ctx, c.ID)
			if err != nil {
				log.ErrorContext(ctx, "digest pledge recount error", "campaign_id", c.ID, "err", err)
				continue
			}
			if total == c.CurrentAmount {
				continue
			}

			log.WarnContext(ctx, "campaign total drifted, correcting",
				"campaign_id", c.ID, "cached", c.CurrentAmount, "actual", total)
			if err := s.campaignRepo.SetCurrentAmount(ctx, c.ID, total); err != nil {
				log.ErrorContext(ctx, "digest campaign correction error", "campaign_id", c.ID, "err", err)
				continue
			}
			fixed++
		}

		offset += len(campaigns)
	}
}
