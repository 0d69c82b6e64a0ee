package cmd

import (
	adapterhttp "fasttrack/internal/adapters/in/http"
	"fasttrack/internal/adapters/out/postgres"
	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/application/usecases/queries"
	"fasttrack/internal/jobs"
	"fasttrack/internal/pkg/auth"
	"log/slog"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     *auth.BcryptHasher
	tokens     *auth.TokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(0),
		tokens:     tokens,
	}, nil
}

func (c *CompositionRoot) TokenVerifier() adapterhttp.TokenVerifier {
	return c.tokens
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		adapterhttp.CommandHandlers{
			CreateParcel:          c.CreateCreateParcelCommandHandler(),
			UpdateParcel:          c.CreateUpdateParcelCommandHandler(),
			UpdateParcelStatus:    c.CreateUpdateParcelStatusCommandHandler(),
			DeleteParcel:          c.CreateDeleteParcelCommandHandler(),
			CreatePickupRequest:   c.CreateCreatePickupRequestCommandHandler(),
			AddPickupParcel:       c.CreateAddPickupParcelCommandHandler(),
			ApprovePickupRequest:  c.CreateApprovePickupRequestCommandHandler(),
			RejectPickupRequest:   c.CreateRejectPickupRequestCommandHandler(),
			CancelPickupRequest:   c.CreateCancelPickupRequestCommandHandler(),
			CompletePickupRequest: c.CreateCompletePickupRequestCommandHandler(),
			CreateCourier:         c.CreateCreateCourierCommandHandler(),
			RegisterUser:          c.CreateRegisterUserCommandHandler(),
			Login:                 c.CreateLoginCommandHandler(),
		},
		adapterhttp.QueryHandlers{
			TrackParcel:             queries.NewTrackParcelQueryHandler(c.gormDB),
			ListParcels:             queries.NewListParcelsQueryHandler(c.gormDB),
			GetParcel:               queries.NewGetParcelQueryHandler(c.gormDB),
			GetTrackingUpdates:      queries.NewGetTrackingUpdatesQueryHandler(c.gormDB),
			ListPickupRequests:      queries.NewListPickupRequestsQueryHandler(c.gormDB),
			GetPickupRequest:        queries.NewGetPickupRequestQueryHandler(c.gormDB),
			GetPickupRequestParcels: queries.NewGetPickupRequestParcelsQueryHandler(c.gormDB),
			ListAvailableParcels:    queries.NewListAvailableParcelsQueryHandler(c.gormDB),
			ListCouriers:            queries.NewListCouriersQueryHandler(c.gormDB),
			GetPlatformStats:        queries.NewGetPlatformStatsQueryHandler(c.gormDB),
			GetMerchantStats:        queries.NewGetMerchantStatsQueryHandler(c.gormDB),
			GetAccount:              queries.NewGetAccountQueryHandler(c.gormDB),
		},
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(queries.NewGetTrackingDriftQueryHandler(c.gormDB), logger)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePickupRequestCommandHandler() commands.CreatePickupRequestCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPickupParcelCommandHandler() commands.AddPickupParcelCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPickupParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateApprovePickupRequestCommandHandler() commands.ApprovePickupRequestCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApprovePickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectPickupRequestCommandHandler() commands.RejectPickupRequestCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectPickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelPickupRequestCommandHandler() commands.CancelPickupRequestCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelPickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePickupRequestCommandHandler() commands.CompletePickupRequestCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.hasher, c.tokens)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
