package doctors

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DoctorUsecase serves directory reads from the local snapshot and refreshes
// it from the remote feed. Refreshes are tagged with a monotonically
// increasing sequence; a slow fetch that completes after a newer one is
// discarded so a stale payload never overwrites a fresher snapshot.
type DoctorUsecase struct {
	directory contracts.DoctorDirectoryClient
	snapshot  contracts.DoctorRepository
	limiter   *rate.Limiter
	log       *zap.Logger

	refreshSeq uint64

	mu          sync.Mutex
	appliedSeq  uint64
	refreshedAt time.Time
}

func NewDoctorUsecase(
	directoryClient contracts.DoctorDirectoryClient,
	snapshotRepository contracts.DoctorRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *DoctorUsecase {
	interval := time.Duration(internalConfig.Directory.RefreshIntervalSeconds) * time.Second
	return &DoctorUsecase{
		directory: directoryClient,
		snapshot:  snapshotRepository,
		limiter:   rate.NewLimiter(rate.Every(interval), internalConfig.Directory.RefreshBurst),
		log:       logger,
	}
}

func (u *DoctorUsecase) ListDoctors(ctx context.Context, speciality, search string) ([]models.Doctor, error) {
	u.refreshIfAllowed(ctx)

	switch {
	case speciality != "":
		return u.snapshot.FindBySpeciality(ctx, speciality)
	case search != "":
		return u.snapshot.Search(ctx, search)
	default:
		return u.snapshot.FindAll(ctx)
	}
}

func (u *DoctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	u.refreshIfAllowed(ctx)
	return u.snapshot.FindByID(ctx, doctorID)
}

// RefreshDirectory fetches the remote feed and replaces the snapshot, unless
// a newer refresh already landed.
func (u *DoctorUsecase) RefreshDirectory(ctx context.Context) error {
	seq := atomic.AddUint64(&u.refreshSeq, 1)

	fetched, err := u.directory.FetchDoctors(ctx)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if seq <= u.appliedSeq {
		u.log.Debug(constvars.ErrDevDirectoryStaleResult,
			zap.Uint64(constvars.LoggingRefreshSeqKey, seq),
			zap.Uint64("applied_seq", u.appliedSeq),
		)
		return nil
	}

	if err := u.snapshot.ReplaceAll(ctx, fetched); err != nil {
		return err
	}
	u.appliedSeq = seq
	u.refreshedAt = time.Now()

	u.log.Info("doctor directory refreshed",
		zap.Uint64(constvars.LoggingRefreshSeqKey, seq),
		zap.Int("doctor_count", len(fetched)),
	)
	return nil
}

// refreshIfAllowed opportunistically refreshes the snapshot, rate-limited so
// read bursts do not hammer the upstream feed. A refresh failure is logged
// and the stale snapshot keeps serving; readers get a retry affordance from
// their own fetch path failing, not from here.
func (u *DoctorUsecase) refreshIfAllowed(ctx context.Context) {
	if !u.limiter.Allow() {
		return
	}
	if err := u.RefreshDirectory(ctx); err != nil {
		u.log.Warn("directory refresh failed, serving last snapshot", zap.Error(err))
	}
}
