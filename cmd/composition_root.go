package cmd

import (
	"log/slog"

	httpin "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/notify/kafka"
	"cargo/internal/adapters/out/notify/logsink"
	"cargo/internal/adapters/out/notify/rabbitmq"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/jobs"
	"cargo/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	roster     services.DispatcherRoster
	fanout     *fanout.Fanout
	metrics    *metrics.Dispatch
	logger     *slog.Logger
}

// NewCompositionRoot registers the dispatch metrics with reg and wires the
// fan-out around notifier.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	reg prometheus.Registerer,
	logger *slog.Logger,
) CompositionRoot {
	m := metrics.NewDispatch(reg)
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		roster:     services.NewDispatcherRoster(cfg.DispatcherIDs),
		fanout:     fanout.New(notifier, cfg.FanoutConcurrency, cfg.FanoutTimeout, logger, m.Notifications),
		metrics:    m,
		logger:     logger,
	}
}

// NewNotifier builds the transport selected by cfg.NotifyTransport. The
// returned closer releases broker connections.
func NewNotifier(cfg Config, logger *slog.Logger) (ports.Notifier, func() error, error) {
	switch cfg.NotifyTransport {
	case TransportRabbitMQ:
		n, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			return nil, nil, err
		}
		return n, n.Close, nil
	case TransportKafka:
		n := kafka.NewNotifier(cfg.KafkaHost, cfg.KafkaNotifyTopic)
		return n, n.Close, nil
	default:
		return logsink.NewNotifier(logger), func() error { return nil }, nil
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) carrierUoW() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.uow(), c.roster, c.fanout)
}

func (c *CompositionRoot) CreateSetFeeCommandHandler() commands.SetFeeCommandHandler {
	return commands.NewSetFeeCommandHandler(c.uow(), c.roster, c.fanout, c.metrics)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uow(), c.roster, c.fanout, c.metrics)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uow(), c.roster, c.fanout)
}

func (c *CompositionRoot) CreateTopUpBalanceCommandHandler() commands.TopUpBalanceCommandHandler {
	return commands.NewTopUpBalanceCommandHandler(c.carrierUoW(), c.roster, c.fanout, c.metrics)
}

func (c *CompositionRoot) CreateDebitBalanceCommandHandler() commands.DebitBalanceCommandHandler {
	return commands.NewDebitBalanceCommandHandler(c.carrierUoW(), c.roster, c.fanout, c.metrics)
}

func (c *CompositionRoot) CreateSubmitProofCommandHandler() commands.SubmitProofCommandHandler {
	return commands.NewSubmitProofCommandHandler(c.uow(), c.roster, c.fanout)
}

func (c *CompositionRoot) CreateReviewProofCommandHandler() commands.ReviewProofCommandHandler {
	return commands.NewReviewProofCommandHandler(c.uow(), c.roster, c.fanout, c.metrics)
}

func (c *CompositionRoot) CreateRegisterCarrierCommandHandler() commands.RegisterCarrierCommandHandler {
	return commands.NewRegisterCarrierCommandHandler(c.carrierUoW(), c.cfg.SignupBonus, c.metrics)
}

func (c *CompositionRoot) CreateRegisterRequesterCommandHandler() commands.RegisterRequesterCommandHandler {
	return commands.NewRegisterRequesterCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.uow(), c.roster, c.fanout)
}

func (c *CompositionRoot) CreateBroadcastCommandHandler() commands.BroadcastCommandHandler {
	return commands.NewBroadcastCommandHandler(c.uow(), c.roster, c.fanout)
}

func (c *CompositionRoot) CreateRemindPendingProofsCommandHandler() commands.RemindPendingProofsCommandHandler {
	return commands.NewRemindPendingProofsCommandHandler(c.uow(), c.roster, c.fanout)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SubmitOrder:       c.CreateSubmitOrderCommandHandler(),
		SetFee:            httpin.HandlerFunc[commands.SetFeeCommand](c.CreateSetFeeCommandHandler().Handle),
		AcceptOrder:       c.CreateAcceptOrderCommandHandler(),
		RejectOrder:       httpin.HandlerFunc[commands.RejectOrderCommand](c.CreateRejectOrderCommandHandler().Handle),
		CompleteOrder:     httpin.HandlerFunc[commands.CompleteOrderCommand](c.CreateCompleteOrderCommandHandler().Handle),
		TopUpBalance:      c.CreateTopUpBalanceCommandHandler(),
		DebitBalance:      c.CreateDebitBalanceCommandHandler(),
		SubmitProof:       c.CreateSubmitProofCommandHandler(),
		ReviewProof:       c.CreateReviewProofCommandHandler(),
		RegisterCarrier:   c.CreateRegisterCarrierCommandHandler(),
		RegisterRequester: httpin.HandlerFunc[commands.RegisterRequesterCommand](c.CreateRegisterRequesterCommandHandler().Handle),
		SetStatus:         httpin.HandlerFunc[commands.SetStatusCommand](c.CreateSetStatusCommandHandler().Handle),
		Broadcast:         c.CreateBroadcastCommandHandler(),

		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		GetCarrier:        queries.NewGetCarrierQueryHandler(c.gormDB),
		ListCarriers:      queries.NewListCarriersQueryHandler(c.gormDB),
		ListRequesters:    queries.NewListRequestersQueryHandler(c.gormDB),
		ListPendingProofs: queries.NewListPendingProofsQueryHandler(c.gormDB),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRemindPendingProofsCommandHandler(), jobs.Settings{
		ReminderSchedule:  c.cfg.ReminderSchedule,
		ReminderThreshold: c.cfg.ReminderThreshold,
	}, c.logger)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
