package care

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	dispatchermocks "gitee.com/mcaid/notification/internal/service/dispatcher/mocks"
	"gitee.com/mcaid/notification/internal/service/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUsers struct {
	recipients map[int64]domain.Recipient
}

func (f *fakeUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	f.recipients[u.ID] = u.Recipient()
	return u, nil
}

func (f *fakeUsers) FindRecipient(_ context.Context, userID int64) (domain.Recipient, error) {
	r, ok := f.recipients[userID]
	if !ok {
		return domain.Recipient{}, errs.ErrRecipientNotFound
	}
	return r, nil
}

func (f *fakeUsers) UpdatePreferences(_ context.Context, userID int64, prefs domain.NotificationPreferences) error {
	r, ok := f.recipients[userID]
	if !ok {
		return errs.ErrRecipientNotFound
	}
	r.Preferences = prefs
	f.recipients[userID] = r
	return nil
}

func newUsers() *fakeUsers {
	return &fakeUsers{recipients: map[int64]domain.Recipient{
		1: {UserID: 1, Email: "mary@mcaid.test", Phone: "+15550001111", FirstName: "Mary", LastName: "Ade",
			Preferences: domain.DefaultPreferences()},
		2: {UserID: 2, Email: "jane@mcaid.test", FirstName: "Jane", LastName: "Doe",
			Preferences: domain.DefaultPreferences()},
	}}
}

type fakeAppointments struct {
	nextID    int64
	createErr error
	updateErr error
}

func (f *fakeAppointments) Create(_ context.Context, a domain.Appointment) (domain.Appointment, error) {
	if f.createErr != nil {
		return domain.Appointment{}, f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	return a, nil
}

func (f *fakeAppointments) Update(_ context.Context, a domain.Appointment) (domain.Appointment, error) {
	if f.updateErr != nil {
		return domain.Appointment{}, f.updateErr
	}
	a.PatientID, a.ProviderID = 1, 2
	return a, nil
}

func (f *fakeAppointments) FindByID(_ context.Context, id int64) (domain.Appointment, error) {
	return domain.Appointment{ID: id, PatientID: 1, ProviderID: 2}, nil
}

func newAppointment() domain.Appointment {
	return domain.Appointment{
		PatientID:  1,
		ProviderID: 2,
		Date:       "2024-03-01",
		Time:       "10:00",
		Type:       "video",
	}
}

func TestAppointmentService_Create(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := dispatchermocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
		assert.Equal(t, domain.EventAppointmentCreated, evt.Kind)
		assert.Equal(t, int64(1), evt.Recipient.UserID)
		p, ok := evt.Payload.(domain.AppointmentPayload)
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", p.DoctorName)
		assert.Equal(t, "Mary Ade", p.PatientName)
		assert.Equal(t, int64(1), p.AppointmentID)
		assert.False(t, p.BookedByPatient)
	})

	svc := NewAppointmentService(&fakeAppointments{}, newUsers(), notifier)
	a, err := svc.Create(context.Background(), newAppointment())
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, domain.AppointmentScheduled, a.Status)
}

func TestAppointmentService_Book(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := dispatchermocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
		// 预约者是孕产妇，通知医护人员
		assert.Equal(t, int64(2), evt.Recipient.UserID)
		p := evt.Payload.(domain.AppointmentPayload)
		assert.True(t, p.BookedByPatient)
		assert.Equal(t, "Mary Ade", p.PatientName)
	})

	_, err := NewAppointmentService(&fakeAppointments{}, newUsers(), notifier).Book(context.Background(), newAppointment())
	require.NoError(t, err)
}

func TestAppointmentService_Update(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		repo    *fakeAppointments
		input   domain.Appointment
		mock    func(n *dispatchermocks.MockNotifier)
		wantErr error
	}{
		{
			name:  "更新成功通知患者",
			repo:  &fakeAppointments{},
			input: domain.Appointment{ID: 9, Date: "2024-03-02", Time: "11:00"},
			mock: func(n *dispatchermocks.MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
					assert.Equal(t, domain.EventAppointmentUpdated, evt.Kind)
					assert.Equal(t, int64(1), evt.Recipient.UserID)
				})
			},
		},
		{
			name:    "预约ID非法",
			repo:    &fakeAppointments{},
			input:   domain.Appointment{},
			mock:    func(_ *dispatchermocks.MockNotifier) {},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "预约不存在不通知",
			repo:    &fakeAppointments{updateErr: errs.ErrAppointmentNotFound},
			input:   domain.Appointment{ID: 9},
			mock:    func(_ *dispatchermocks.MockNotifier) {},
			wantErr: errs.ErrAppointmentNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := dispatchermocks.NewMockNotifier(ctrl)
			tc.mock(notifier)

			_, err := NewAppointmentService(tc.repo, newUsers(), notifier).Update(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAppointmentService_CreateValidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewAppointmentService(&fakeAppointments{}, newUsers(), dispatchermocks.NewMockNotifier(ctrl))

	a := newAppointment()
	a.Date = ""
	_, err := svc.Create(context.Background(), a)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	a = newAppointment()
	a.ProviderID = 0
	_, err = svc.Book(context.Background(), a)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

// 写入成功但用户查询失败，仍然返回写入结果
func TestAppointmentService_RecipientLookupFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := newUsers()
	delete(users.recipients, 2)
	svc := NewAppointmentService(&fakeAppointments{}, users, dispatchermocks.NewMockNotifier(ctrl))

	a, err := svc.Create(context.Background(), newAppointment())
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
}

func TestAppointmentService_WriteFailedNoNotify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("duplicate entry")
	svc := NewAppointmentService(&fakeAppointments{createErr: dbErr}, newUsers(), dispatchermocks.NewMockNotifier(ctrl))
	_, err := svc.Create(context.Background(), newAppointment())
	assert.ErrorIs(t, err, dbErr)
}

// slowChannel 每次发送都很慢，用来验证业务方不等待通知
type slowChannel struct {
	delay time.Duration
	sent  atomic.Int64
}

func (s *slowChannel) Send(_ context.Context, n domain.Notification) (domain.SendResponse, error) {
	time.Sleep(s.delay)
	s.sent.Add(1)
	return domain.SendResponse{EventID: n.EventID, Channel: n.Channel, Receiver: n.Receiver, Status: domain.SendStatusSucceeded}, nil
}

type seqID struct {
	next atomic.Uint64
}

func (s *seqID) NextID() (uint64, error) {
	return s.next.Add(1), nil
}

func TestAppointmentService_CreateDoesNotWaitForDispatch(t *testing.T) {
	t.Parallel()

	ch := &slowChannel{delay: 2 * time.Second}
	d := dispatcher.NewDispatcher(template.NewMapper(), ch, &seqID{})
	svc := NewAppointmentService(&fakeAppointments{}, newUsers(), d)

	start := time.Now()
	a, err := svc.Create(context.Background(), newAppointment())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, int64(0), ch.sent.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Equal(t, int64(3), ch.sent.Load())
}

type fakeMedications struct{}

func (fakeMedications) Create(_ context.Context, m domain.Medication) (domain.Medication, error) {
	m.ID = 11
	return m, nil
}

func TestMedicationService_Prescribe(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := dispatchermocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
		assert.Equal(t, domain.EventMedicationPrescribed, evt.Kind)
		assert.Equal(t, int64(1), evt.Recipient.UserID)
		p := evt.Payload.(domain.MedicationPayload)
		assert.Equal(t, "Folic Acid", p.Name)
		assert.Equal(t, "Jane Doe", p.PrescriberName)
		assert.Empty(t, p.EndDate)
	})

	svc := NewMedicationService(fakeMedications{}, newUsers(), notifier)
	m, err := svc.Prescribe(context.Background(), 1, 2, domain.Medication{
		Name:      "Folic Acid",
		Dosage:    "400mcg",
		Frequency: "daily",
		StartDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), m.ID)
	assert.Equal(t, int64(1), m.PatientID)
	assert.Equal(t, int64(2), m.PrescriberID)

	_, err = svc.Prescribe(context.Background(), 1, 2, domain.Medication{})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

type fakeOrders struct {
	err error
}

func (f fakeOrders) Create(_ context.Context, o domain.Order) (domain.Order, error) {
	return o, f.err
}

func (f fakeOrders) FindByID(_ context.Context, id int64) (domain.Order, error) {
	return domain.Order{ID: id, UserID: 1}, f.err
}

func (f fakeOrders) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus, eta string) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	return domain.Order{ID: id, UserID: 1, TrackingNumber: "TRK-1", Status: status, EstimatedDelivery: eta}, nil
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		repo    fakeOrders
		status  domain.OrderStatus
		mock    func(n *dispatchermocks.MockNotifier)
		wantErr error
	}{
		{
			name:   "状态变更通知用户",
			status: domain.OrderStatusOutForDelivery,
			mock: func(n *dispatchermocks.MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
					assert.Equal(t, domain.EventOrderStatusChanged, evt.Kind)
					p := evt.Payload.(domain.OrderPayload)
					assert.Equal(t, "out-for-delivery", p.Status)
					assert.Equal(t, "TRK-1", p.TrackingNumber)
					assert.Equal(t, "2024-03-05", p.EstimatedDelivery)
				})
			},
		},
		{
			name:    "非法状态",
			status:  domain.OrderStatus("shipped"),
			mock:    func(_ *dispatchermocks.MockNotifier) {},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "订单不存在",
			repo:    fakeOrders{err: errs.ErrOrderNotFound},
			status:  domain.OrderStatusDelivered,
			mock:    func(_ *dispatchermocks.MockNotifier) {},
			wantErr: errs.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := dispatchermocks.NewMockNotifier(ctrl)
			tc.mock(notifier)

			_, err := NewOrderService(tc.repo, newUsers(), notifier).
				UpdateStatus(context.Background(), 3, tc.status, "2024-03-05")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestHealthAlertService_Raise(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := dispatchermocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
		assert.Equal(t, domain.EventHealthAlert, evt.Kind)
		assert.Equal(t, domain.HealthAlertPayload{AlertType: "Blood Pressure", Message: "Reading above threshold"}, evt.Payload)
	})

	svc := NewHealthAlertService(newUsers(), notifier)
	require.NoError(t, svc.Raise(context.Background(), 1, "Blood Pressure", "Reading above threshold"))

	assert.ErrorIs(t, svc.Raise(context.Background(), 1, "Blood Pressure", " "), errs.ErrInvalidParameter)
	assert.ErrorIs(t, svc.Raise(context.Background(), 99, "Blood Pressure", "x"), errs.ErrRecipientNotFound)
}

type fakeChats struct{}

func (fakeChats) Create(_ context.Context, m domain.ChatMessage) (domain.ChatMessage, error) {
	m.ID = 21
	return m, nil
}

func TestChatService_Send(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	long := strings.Repeat("孕", 60)
	notifier := dispatchermocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.DomainEvent) {
		assert.Equal(t, domain.EventChatMessageReceived, evt.Kind)
		assert.Equal(t, int64(2), evt.Recipient.UserID)
		p := evt.Payload.(domain.ChatMessagePayload)
		assert.Equal(t, "Mary Ade", p.SenderName)
		assert.Equal(t, strings.Repeat("孕", 50)+"...", p.Preview)
	})

	svc := NewChatService(fakeChats{}, newUsers(), notifier)
	msg, err := svc.Send(context.Background(), 1, 2, long)
	require.NoError(t, err)
	assert.Equal(t, int64(21), msg.ID)
	assert.Equal(t, long, msg.Content)

	_, err = svc.Send(context.Background(), 1, 1, "hi")
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = svc.Send(context.Background(), 1, 2, "   ")
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Preview("  hello "))
	assert.Equal(t, strings.Repeat("a", 50), Preview(strings.Repeat("a", 50)))
	assert.Equal(t, strings.Repeat("a", 50)+"...", Preview(strings.Repeat("a", 51)))
}
