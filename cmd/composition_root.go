package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	splitter     services.EscrowSplitter
	payoutClient ports.PayoutClient
	notifier     ports.Notifier
	logger       *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	payoutClient ports.PayoutClient,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		splitter:     services.NewEscrowSplitter(),
		payoutClient: payoutClient,
		notifier:     notifier,
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrderPaymentCommandHandler() commands.ProcessOrderPaymentCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderPaymentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateClaimItemCommandHandler() commands.ClaimItemCommandHandler {
	return commands.NewClaimItemCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemShippedCommandHandler() commands.MarkItemShippedCommandHandler {
	return commands.NewMarkItemShippedCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateUploadDeliveryProofCommandHandler() commands.UploadDeliveryProofCommandHandler {
	return commands.NewUploadDeliveryProofCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateReleasePaymentCommandHandler() commands.ReleasePaymentCommandHandler {
	return commands.NewReleasePaymentCommandHandler(
		c.createUoWFactory(),
		c.splitter,
		c.payoutClient,
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateReleaseNextPaymentCommandHandler() commands.ReleaseNextPaymentCommandHandler {
	return commands.NewReleaseNextPaymentCommandHandler(
		c.createUoWFactory(),
		c.CreateReleasePaymentCommandHandler(),
	)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(c.createDisputeUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEscalateDisputeCommandHandler() commands.EscalateDisputeCommandHandler {
	return commands.NewEscalateDisputeCommandHandler(c.createDisputeUoWFactory())
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(
		c.createUoWFactory(),
		c.CreateReleasePaymentCommandHandler(),
		c.payoutClient,
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRejectDisputeCommandHandler() commands.RejectDisputeCommandHandler {
	return commands.NewRejectDisputeCommandHandler(c.createDisputeUoWFactory())
}

func (c *CompositionRoot) CreateGetUnclaimedItemsQueryHandler() queries.GetUnclaimedItemsQueryHandler {
	return queries.NewGetUnclaimedItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentsByStatusQueryHandler() queries.GetPaymentsByStatusQueryHandler {
	return queries.NewGetPaymentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDisputesByStatusQueryHandler() queries.GetDisputesByStatusQueryHandler {
	return queries.NewGetDisputesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createDisputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
