package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/pkg/dbmetrics"
	"github.com/perfectdrive/rental-service/pkg/psqlbuilder"
	"github.com/perfectdrive/rental-service/pkg/types"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"mileage_plan",
	"total_price",
	"km_limit",
	"status",
	"customer_firstname",
	"customer_lastname",
	"customer_email",
	"customer_phone",
	"customer_address",
	"customer_message",
	"document_id_card",
	"document_license",
	"document_proof",
	"deposit_method",
	"rejection_reason",
	"payment_link",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на аренду
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её:
// создание с проверкой доступности дат должно идти под одной транзакцией.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"mileage_plan",
			"total_price",
			"km_limit",
			"status",
			"customer_firstname",
			"customer_lastname",
			"customer_email",
			"customer_phone",
			"customer_address",
			"customer_message",
			"document_id_card",
			"document_license",
			"document_proof",
			"deposit_method",
		).
		Values(
			booking.StartDate,
			booking.EndDate,
			booking.StartTime,
			booking.EndTime,
			booking.MileagePlan,
			booking.TotalPrice,
			booking.KmLimit,
			booking.Status,
			booking.CustomerFirstname,
			booking.CustomerLastname,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.CustomerAddress,
			booking.CustomerMessage,
			booking.DocumentIDCard,
			booking.DocumentLicense,
			booking.DocumentProof,
			booking.DepositMethod,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListWithFilter получает заявки с гибкой фильтрацией
// Поддерживает фильтрацию по статусу и периоду; отклонённые заявки
// включаются только при IncludeRejected или явном фильтре по статусу.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_date DESC, start_time DESC")

	// Фильтрация по периоду: заявка попадает в выборку, если её окно
	// пересекается с запрошенным
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeRejected {
		terminalStatusStrings := make([]string, len(domain.TerminalStatuses))
		for i, s := range domain.TerminalStatuses {
			terminalStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": terminalStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListDayOccupancies возвращает подневную раскладку активных заявок,
// пересекающихся с диапазоном [from, to]
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы конкурирующая
// заявка не заняла те же даты до коммита.
func (r *Repository) ListDayOccupancies(ctx context.Context, from, to time.Time) ([]domain.ExistingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	terminalStatusStrings := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		terminalStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"start_date",
		"end_date",
		"start_time",
		"end_time",
	).
		From("bookings").
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		Where(squirrel.NotEq{"status": terminalStatusStrings}).
		OrderBy("start_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDayOccupancies - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDayOccupancies - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.ExistingBooking

	for rows.Next() {
		var startDate, endDate time.Time
		var startTime, endTime string

		if err := rows.Scan(&startDate, &endDate, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("%w: ListDayOccupancies - scan row: %v", ErrScanRow, err)
		}

		result = append(result, expandBookingDays(startDate, endDate, startTime, endTime, from, to)...)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDayOccupancies - rows iteration: %v", ErrExecQuery, err)
	}

	return result, nil
}

// expandBookingDays раскладывает заявку на подневные записи,
// обрезая результат по запрошенному диапазону [from, to]
func expandBookingDays(startDate, endDate time.Time, startTime, endTime string, from, to time.Time) []domain.ExistingBooking {
	var days []domain.ExistingBooking

	total := domain.DaysBetween(startDate, endDate)
	for i := 0; i <= total; i++ {
		date := domain.AddDays(startDate, i)

		if domain.DaysBetween(from, date) < 0 || domain.DaysBetween(date, to) < 0 {
			continue
		}

		days = append(days, domain.ExistingBooking{
			Date:        date,
			StartTime:   types.TimeString(startTime),
			EndTime:     types.TimeString(endTime),
			IsStartDate: i == 0,
			IsEndDate:   i == total,
		})
	}

	return days
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// Reject переводит заявку в отклонённые с сохранением причины
func (r *Repository) Reject(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRejected).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reject - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Reject", query, args)
}

// SetPaymentLink сохраняет ссылку на оплату и переводит заявку
// в ожидание оплаты
func (r *Repository) SetPaymentLink(ctx context.Context, id int64, link string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusAwaitingPayment).
		Set("payment_link", link).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentLink - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetPaymentLink", query, args)
}

// Delete удаляет заявку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

// execExpectingRow выполняет запрос, который должен затронуть ровно одну строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.MileagePlan,
		&booking.TotalPrice,
		&booking.KmLimit,
		&booking.Status,
		&booking.CustomerFirstname,
		&booking.CustomerLastname,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.CustomerAddress,
		&booking.CustomerMessage,
		&booking.DocumentIDCard,
		&booking.DocumentLicense,
		&booking.DocumentProof,
		&booking.DepositMethod,
		&booking.RejectionReason,
		&booking.PaymentLink,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
