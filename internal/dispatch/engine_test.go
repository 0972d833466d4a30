package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/antiban"
	"github.com/dmfreire/zapdispatch/internal/config"
	"github.com/dmfreire/zapdispatch/internal/gateway"
	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/repository/mocks"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

// fakeClock advances instantly so throttle sleeps do not slow tests
// down. Advancing now on every sleep lets the business-hours wait
// resolve naturally.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  []time.Duration
	onSleep func(d time.Duration)
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	hook := c.onSleep
	c.mu.Unlock()
	if hook != nil {
		hook(d)
	}
	return ctx.Err()
}

func (c *fakeClock) slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

type fakeGateway struct {
	mu      sync.Mutex
	sent    []gateway.Outbound
	err     error
	entered chan struct{}
	gate    chan struct{}
}

func (g *fakeGateway) Send(ctx context.Context, instance string, out gateway.Outbound) (*gateway.SendResult, error) {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.gate != nil {
		<-g.gate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}
	g.sent = append(g.sent, out)
	return &gateway.SendResult{
		MessageID: fmt.Sprintf("msg-%d", len(g.sent)),
		Raw:       json.RawMessage(`{"status":"PENDING"}`),
	}, nil
}

func (g *fakeGateway) delivered() []gateway.Outbound {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]gateway.Outbound, len(g.sent))
	copy(out, g.sent)
	return out
}

type fakeWarmup struct {
	status *warmup.Status
	err    error
}

func (f *fakeWarmup) Status(string) (*warmup.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

type testRepos struct {
	repo     *mocks.MockRepository
	campaign *mocks.MockCampaignRepository
	contact  *mocks.MockContactRepository
	dispatch *mocks.MockDispatchRepository
}

func newTestRepos(ctrl *gomock.Controller) *testRepos {
	r := &testRepos{
		repo:     mocks.NewMockRepository(ctrl),
		campaign: mocks.NewMockCampaignRepository(ctrl),
		contact:  mocks.NewMockContactRepository(ctrl),
		dispatch: mocks.NewMockDispatchRepository(ctrl),
	}
	r.repo.EXPECT().Campaign().Return(r.campaign).AnyTimes()
	r.repo.EXPECT().Contact().Return(r.contact).AnyTimes()
	r.repo.EXPECT().Dispatch().Return(r.dispatch).AnyTimes()
	return r
}

// businessMorning is a Wednesday at 10:00, well inside the send window.
var businessMorning = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func newTestEngine(repos *testRepos, gw Gateway, wu WarmupAdvisor, clock Clock) *Engine {
	policy := antiban.NewEngine(config.DefaultAntiBan())
	return NewEngine(repos.repo, gw, policy, wu, clock, nil, zap.NewNop())
}

func testCampaign() *models.Campaign {
	return &models.Campaign{
		ID:           1,
		Name:         "spring promo",
		Kind:         models.KindText,
		Message:      "Hi {{name}}",
		InstanceName: "inst-a",
		Status:       models.CampaignStatusDraft,
	}
}

func testContacts(n int) []*models.Contact {
	out := make([]*models.Contact, n)
	for i := range out {
		out[i] = &models.Contact{
			ID:         int64(i + 1),
			CampaignID: 1,
			Name:       fmt.Sprintf("Contact %d", i+1),
			Phone:      fmt.Sprintf("55119999900%02d", i+1),
		}
	}
	return out
}

func pendingDispatch(contactID int64) *models.Dispatch {
	return &models.Dispatch{
		ID:         contactID * 10,
		CampaignID: 1,
		ContactID:  contactID,
		Status:     models.DispatchStatusPending,
	}
}

func waitForLoop(t *testing.T, e *Engine, campaignID int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !e.Running(campaignID)
	}, 5*time.Second, 2*time.Millisecond)
}

func TestEngine_Start_CampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	repos.campaign.EXPECT().GetByID(int64(99)).Return(nil, nil)

	e := newTestEngine(repos, &fakeGateway{}, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	assert.ErrorIs(t, e.Start(99), ErrCampaignNotFound)
}

func TestEngine_Start_MissingInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	campaign := testCampaign()
	campaign.InstanceName = ""
	repos.campaign.EXPECT().GetByID(int64(1)).Return(campaign, nil)

	e := newTestEngine(repos, &fakeGateway{}, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	assert.ErrorIs(t, e.Start(1), ErrMissingInstance)
}

func TestEngine_Start_NoPendingContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(nil, nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	e := newTestEngine(repos, &fakeGateway{}, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	require.NoError(t, e.Start(1))
	assert.False(t, e.Running(1))
}

func TestEngine_Run_SendsAllContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(3)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 3).Return(nil)

	for _, c := range contacts {
		repos.dispatch.EXPECT().CreateOrFetch(int64(1), c.ID, c.Phone).Return(pendingDispatch(c.ID), nil)
		repos.dispatch.EXPECT().MarkSent(c.ID*10, gomock.Any(), gomock.Any()).Return(nil)
	}
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil).Times(3)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	sent := gw.delivered()
	require.Len(t, sent, 3)
	assert.Equal(t, "Hi Contact 1", sent[0].Text)
	assert.Equal(t, "5511999990001", sent[0].Number)
}

func TestEngine_Run_PacesBetweenContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(2)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 2).Return(nil)
	for _, c := range contacts {
		repos.dispatch.EXPECT().CreateOrFetch(int64(1), c.ID, c.Phone).Return(pendingDispatch(c.ID), nil)
		repos.dispatch.EXPECT().MarkSent(c.ID*10, gomock.Any(), gomock.Any()).Return(nil)
	}
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil).Times(2)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	clock := &fakeClock{now: businessMorning}
	e := newTestEngine(repos, &fakeGateway{}, &fakeWarmup{status: &warmup.Status{}}, clock)

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	sleeps := clock.slept()
	require.Len(t, sleeps, 2)
	for _, d := range sleeps {
		assert.GreaterOrEqual(t, d, 17*time.Second)
		assert.LessOrEqual(t, d, 69*time.Second)
	}
}

func TestEngine_Run_SkipsAlreadySentDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(2)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 2).Return(nil)

	sentAlready := pendingDispatch(1)
	sentAlready.Status = models.DispatchStatusSent
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(sentAlready, nil)

	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(2), contacts[1].Phone).Return(pendingDispatch(2), nil)
	repos.dispatch.EXPECT().MarkSent(int64(20), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	require.Len(t, gw.delivered(), 1)
	assert.Equal(t, "5511999990002", gw.delivered()[0].Number)
}

func TestEngine_Run_InvalidPhoneRecordedAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(2)
	contacts[0].Phone = "123"

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 2).Return(nil)

	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), "123").Return(pendingDispatch(1), nil)
	repos.dispatch.EXPECT().MarkError(int64(10), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementErrors(int64(1)).Return(nil)

	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(2), contacts[1].Phone).Return(pendingDispatch(2), nil)
	repos.dispatch.EXPECT().MarkSent(int64(20), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	require.Len(t, gw.delivered(), 1)
}

func TestEngine_Run_GatewayFailureRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(1)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 1).Return(nil)
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(pendingDispatch(1), nil)

	apiBody := json.RawMessage(`{"error":"not on whatsapp"}`)
	repos.dispatch.EXPECT().MarkError(int64(10), gomock.Any(), apiBody).Return(nil)
	repos.campaign.EXPECT().IncrementErrors(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	gw := &fakeGateway{err: &gateway.APIError{StatusCode: 400, Body: apiBody}}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)
}

func TestEngine_Run_WarmupCeilingPausesCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(1)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 1).Return(nil)
	repos.campaign.EXPECT().UpdateStatus(int64(1), models.CampaignStatusPaused).Return(nil)

	wu := &fakeWarmup{status: &warmup.Status{
		IsWarmingUp:       true,
		CurrentDay:        5,
		MaxMessagesPerDay: 20,
	}}

	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, wu, &fakeClock{now: businessMorning})

	// the instance already used up its day-5 allowance
	for i := 0; i < 20; i++ {
		e.policy.RegisterSend("inst-a")
	}

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	assert.Empty(t, gw.delivered())
}

func TestEngine_Run_WaitsOutNonBusinessHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(1)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 1).Return(nil)
	repos.campaign.EXPECT().UpdateStatus(int64(1), models.CampaignStatusPaused).Return(nil)
	repos.campaign.EXPECT().UpdateStatus(int64(1), models.CampaignStatusSending).Return(nil)
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(pendingDispatch(1), nil)
	repos.dispatch.EXPECT().MarkSent(int64(10), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	// Saturday midday: the loop must wait until Monday 08:00
	clock := &fakeClock{now: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)}

	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, clock)

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	require.Len(t, gw.delivered(), 1)
	sleeps := clock.slept()
	require.NotEmpty(t, sleeps)
	assert.Equal(t, 44*time.Hour, sleeps[0])
}

func TestEngine_Run_PauseDuringBusinessHoursWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(1)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil).Times(2)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 1).Return(nil)
	// once from the loop entering the wait, once from Pause itself
	repos.campaign.EXPECT().UpdateStatus(int64(1), models.CampaignStatusPaused).Return(nil).Times(2)

	// Saturday midday puts the loop into the business-hours wait
	clock := &fakeClock{now: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)}
	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, clock)

	clock.onSleep = func(time.Duration) {
		require.NoError(t, e.Pause(1))
	}

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	// nothing went out and the status was never flipped back to sending
	assert.Empty(t, gw.delivered())
}

func TestEngine_Run_PreventivePauseSkipsSentContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(3)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 3).Return(nil)

	for _, c := range contacts[:2] {
		d := pendingDispatch(c.ID)
		d.Status = models.DispatchStatusSent
		repos.dispatch.EXPECT().CreateOrFetch(int64(1), c.ID, c.Phone).Return(d, nil)
	}
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(3), contacts[2].Phone).Return(pendingDispatch(3), nil)
	repos.dispatch.EXPECT().MarkSent(int64(30), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	clock := &fakeClock{now: businessMorning}
	gw := &fakeGateway{}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, clock)

	// the counter sits exactly on a pause multiple
	for i := 0; i < 20; i++ {
		e.policy.RegisterSend("inst-a")
	}

	require.NoError(t, e.Start(1))
	waitForLoop(t, e, 1)

	require.Len(t, gw.delivered(), 1)

	pauses := 0
	for _, d := range clock.slept() {
		if d == 5*time.Minute {
			pauses++
		}
	}
	assert.Equal(t, 1, pauses, "one pause ahead of the real send, none for skipped contacts")
}

func TestEngine_PauseAndResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(3)

	gate := make(chan struct{})
	entered := make(chan struct{})
	gw := &fakeGateway{gate: gate, entered: entered}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	// first run: contact 1 goes out, then the pause flag stops the loop
	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 3).Return(nil)
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(pendingDispatch(1), nil)
	repos.dispatch.EXPECT().MarkSent(int64(10), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.campaign.EXPECT().UpdateStatus(int64(1), models.CampaignStatusPaused).Return(nil)

	require.NoError(t, e.Start(1))

	<-entered // contact 1 is in flight, pause now
	require.NoError(t, e.Pause(1))

	gate <- struct{}{} // let the in-flight send finish
	waitForLoop(t, e, 1)
	require.Len(t, gw.delivered(), 1)

	// resume: the loop is gone, so Resume starts over with what is left
	remaining := contacts[1:]
	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(remaining, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 2).Return(nil)
	for _, c := range remaining {
		repos.dispatch.EXPECT().CreateOrFetch(int64(1), c.ID, c.Phone).Return(pendingDispatch(c.ID), nil)
		repos.dispatch.EXPECT().MarkSent(c.ID*10, gomock.Any(), gomock.Any()).Return(nil)
	}
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil).Times(2)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	require.NoError(t, e.Resume(1))
	for i := 0; i < 2; i++ {
		<-entered
		gate <- struct{}{}
	}
	waitForLoop(t, e, 1)

	// every contact delivered exactly once across the two runs
	sent := gw.delivered()
	require.Len(t, sent, 3)
	numbers := make(map[string]int)
	for _, out := range sent {
		numbers[out.Number]++
	}
	for number, count := range numbers {
		assert.Equal(t, 1, count, "number %s delivered more than once", number)
	}
}

func TestEngine_Start_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(1)

	gate := make(chan struct{})
	gw := &fakeGateway{gate: gate}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil).Times(2)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 1).Return(nil)
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(pendingDispatch(1), nil)
	repos.dispatch.EXPECT().MarkSent(int64(10), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)
	repos.campaign.EXPECT().MarkCompleted(int64(1)).Return(nil)

	require.NoError(t, e.Start(1))
	assert.ErrorIs(t, e.Start(1), ErrAlreadyRunning)

	gate <- struct{}{}
	waitForLoop(t, e, 1)
}

func TestEngine_Shutdown_StopsLoops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newTestRepos(ctrl)
	contacts := testContacts(2)

	gate := make(chan struct{})
	entered := make(chan struct{})
	gw := &fakeGateway{gate: gate, entered: entered}
	e := newTestEngine(repos, gw, &fakeWarmup{status: &warmup.Status{}}, &fakeClock{now: businessMorning})

	repos.campaign.EXPECT().GetByID(int64(1)).Return(testCampaign(), nil)
	repos.contact.EXPECT().ListPending(int64(1)).Return(contacts, nil)
	repos.campaign.EXPECT().MarkSending(int64(1), 2).Return(nil)
	repos.dispatch.EXPECT().CreateOrFetch(int64(1), int64(1), contacts[0].Phone).Return(pendingDispatch(1), nil)
	repos.dispatch.EXPECT().MarkSent(int64(10), gomock.Any(), gomock.Any()).Return(nil)
	repos.campaign.EXPECT().IncrementSent(int64(1)).Return(nil)

	require.NoError(t, e.Start(1))
	<-entered // contact 1 is in flight

	done := make(chan struct{})
	go func() {
		e.Shutdown()
		close(done)
	}()

	// the in-flight send finishes, then the canceled context stops the
	// loop at the post-send sleep before contact two
	gate <- struct{}{}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not drain the loop")
	}

	assert.Len(t, gw.delivered(), 1)
	assert.Equal(t, 0, e.ActiveCampaigns())
}
