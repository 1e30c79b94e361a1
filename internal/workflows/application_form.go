package workflows

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
)

// ApplicationForm is the apply surface for one job: a cover-letter buffer
// plus submit state.
type ApplicationForm struct {
	svc    services.ApplicationService
	log    logrus.FieldLogger
	jobID  string
	userID string

	busy atomic.Bool

	mu     sync.Mutex
	cover  string
	open   bool
	status SubmitStatus

	// OnSuccess runs after the application is stored, so dependent listings
	// can refresh.
	OnSuccess func(*models.Application)
	// OnClose runs when the form closes after a successful submit.
	OnClose func()
}

func NewApplicationForm(svc services.ApplicationService, jobID, userID string, log logrus.FieldLogger) *ApplicationForm {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ApplicationForm{
		svc:    svc,
		jobID:  jobID,
		userID: userID,
		log:    log.WithFields(logrus.Fields{"job_id": jobID, "user_id": userID}),
		open:   true,
		status: SubmitStatus{State: SubmitIdle},
	}
}

func (f *ApplicationForm) SetCoverLetter(text string) {
	f.mu.Lock()
	f.cover = text
	f.mu.Unlock()
}

func (f *ApplicationForm) CoverLetter() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cover
}

func (f *ApplicationForm) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *ApplicationForm) Status() SubmitStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit sends the buffered cover letter. On success the buffer is cleared and
// the form closes; on failure the text stays and the status carries the
// store's message verbatim.
func (f *ApplicationForm) Submit(ctx context.Context) (*models.Application, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer f.busy.Store(false)

	f.mu.Lock()
	cover := f.cover
	f.status = SubmitStatus{State: Submitting}
	f.mu.Unlock()

	app, err := f.svc.Submit(ctx, f.jobID, f.userID, cover)
	if err != nil {
		f.log.WithError(err).Error("application submit failed")
		f.mu.Lock()
		f.status = SubmitStatus{State: SubmitFailed, Message: utils.Cause(err)}
		f.mu.Unlock()
		return nil, err
	}

	f.mu.Lock()
	f.cover = ""
	f.open = false
	f.status = SubmitStatus{State: SubmitIdle, Message: "Application submitted successfully!"}
	onSuccess, onClose := f.OnSuccess, f.OnClose
	f.mu.Unlock()

	f.log.WithField("application_id", app.ID).Info("application submitted")
	if onSuccess != nil {
		onSuccess(app)
	}
	if onClose != nil {
		onClose()
	}
	return app, nil
}
