package create_booking

import (
	"context"
	"fmt"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/internal/usecase/calculate_price"
)

// UseCase use case создания заявки на аренду
type UseCase struct {
	bookingRepo  BookingRepository
	priceCalc    PriceCalculator
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	priceCalc PriceCalculator,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		priceCalc:    priceCalc,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы две конкурирующие заявки не заняли одни и те же даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: start=%s %s, end=%s %s, plan=%s, email=%s",
		req.StartDate.Format(domain.DateFormat), req.StartTime,
		req.EndDate.Format(domain.DateFormat), req.EndTime, req.Plan, req.CustomerEmail)

	// 2. Начало аренды не может быть в прошлом
	now := uc.timeProvider.Now()
	if domain.DaysBetween(now, req.StartDate) < 0 {
		uc.logger.Warn("CreateBooking: start date %s is in the past",
			req.StartDate.Format(domain.DateFormat))
		return nil, ErrStartDateInPast
	}

	// 3. Рассчитываем стоимость; тарифные правила заодно проверяют само окно
	start := domain.CombineDateTime(req.StartDate, req.StartTime)
	end := domain.CombineDateTime(req.EndDate, req.EndTime)

	quote, err := uc.priceCalc.Execute(ctx, &calculate_price.Request{
		Start: start,
		End:   end,
		Plan:  req.Plan,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
	}
	if quote.Err != nil {
		uc.logger.Warn("CreateBooking: rental window rejected: %v", quote.Err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRentalWindow, quote.Err)
	}

	var result *domain.Booking

	// 4. Проверка доступности и вставка под сериализуемой транзакцией
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Забираем раскладку занятости с блокировкой строк (FOR UPDATE)
		occupancies, err := uc.bookingRepo.ListDayOccupancies(txCtx, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list day occupancies: %v", err)
			return fmt.Errorf("%w: failed to list day occupancies: %v", ErrInternal, err)
		}

		// 4.2. Классифицируем каждый день окна
		byDate := make(map[string]domain.DateAvailability)
		grouped := make(map[string][]domain.ExistingBooking)
		for _, occ := range occupancies {
			key := occ.Date.Format(domain.DateFormat)
			grouped[key] = append(grouped[key], occ)
		}
		for key, items := range grouped {
			byDate[key] = domain.ClassifyDay(items[0].Date, items)
		}

		// 4.3. Промежуточные дни должны быть свободны
		if !domain.RangeIsBookable(req.StartDate, req.EndDate, byDate) {
			uc.logger.Warn("CreateBooking: window %s..%s has blocked days",
				req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrWindowNotAvailable
		}

		// 4.4. Краевые дни проверяем с учетом времени и технологического перерыва
		if startDay, ok := byDate[req.StartDate.Format(domain.DateFormat)]; ok {
			if !startDay.StartableAt(req.StartTime) {
				uc.logger.Warn("CreateBooking: start day %s not available at %s",
					req.StartDate.Format(domain.DateFormat), req.StartTime)
				return ErrWindowNotAvailable
			}
		}
		if endDay, ok := byDate[req.EndDate.Format(domain.DateFormat)]; ok {
			if !endDay.EndableAt(req.EndTime) {
				uc.logger.Warn("CreateBooking: end day %s not available at %s",
					req.EndDate.Format(domain.DateFormat), req.EndTime)
				return ErrWindowNotAvailable
			}
		}

		// 4.5. Создаем заявку со снимком рассчитанной цены
		booking := &domain.Booking{
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			MileagePlan: req.Plan,
			TotalPrice:  quote.TotalPrice,
			KmLimit:     quote.KmLimit,
			Status:      domain.StatusPending,

			CustomerFirstname: req.CustomerFirstname,
			CustomerLastname:  req.CustomerLastname,
			CustomerEmail:     req.CustomerEmail,
			CustomerPhone:     req.CustomerPhone,
			CustomerAddress:   req.CustomerAddress,
			CustomerMessage:   req.CustomerMessage,

			DocumentIDCard:  req.DocumentIDCard,
			DocumentLicense: req.DocumentLicense,
			DocumentProof:   req.DocumentProof,

			DepositMethod: req.DepositMethod,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомления не влияют на результат: заявка уже создана
	if err := uc.notifier.SendAdminNewBooking(ctx, result); err != nil {
		uc.logger.Error("CreateBooking: failed to notify admin for booking id=%d: %v", result.ID, err)
	}
	if err := uc.notifier.SendCustomerReceived(ctx, result); err != nil {
		uc.logger.Error("CreateBooking: failed to notify customer for booking id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:         result.ID,
		StartDate:  result.StartDate,
		EndDate:    result.EndDate,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Plan:       string(result.MileagePlan),
		TotalPrice: result.TotalPrice,
		Days:       quote.Days,
		KmLimit:    result.KmLimit,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
	}, nil
}
