package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/domain/payroll"
	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	punchRepo    timeclock.PunchRepository
	ledgerRepo   ledger.EntryRepository
	holidayRepo  holiday.HolidayRepository
	logger       *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	punchRepo timeclock.PunchRepository,
	ledgerRepo ledger.EntryRepository,
	holidayRepo holiday.HolidayRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		ledgerRepo:   ledgerRepo,
		holidayRepo:  holidayRepo,
		logger:       logger,
	}
}

// RunPayroll implements payroll.PayrollService. The whole month is
// recomputed from repository snapshots on every call; nothing is cached or
// persisted between runs.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	punches, err := s.punchRepo.ListByMonth(ctx, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to load punches: %w", err)
	}

	entries, err := s.ledgerRepo.ListByMonth(ctx, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	holidays, err := s.holidayRepo.ListActiveByYear(ctx, req.PeriodYear)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	cal := MonthCalendar(req.PeriodYear, req.PeriodMonth, holidays)
	warnings := CheckCalendar(cal, req.PeriodMonth, req.PeriodYear)

	punchesByEmployee := make(map[string][]timeclock.Punch)
	for _, p := range punches {
		punchesByEmployee[p.EmployeeID] = append(punchesByEmployee[p.EmployeeID], p)
	}
	entriesByEmployee := make(map[string][]ledger.Entry)
	for _, e := range entries {
		entriesByEmployee[e.EmployeeID] = append(entriesByEmployee[e.EmployeeID], e)
	}

	records := make([]payroll.RecordResponse, 0, len(employees))
	for _, emp := range employees {
		if emp.Role == employee.RoleManager {
			continue
		}

		record, empWarnings := s.computeEmployee(emp, req.PeriodMonth, req.PeriodYear, punchesByEmployee[emp.ID], entriesByEmployee[emp.ID], cal)
		warnings = append(warnings, empWarnings...)
		records = append(records, mapRecordResponse(record))
	}

	for _, w := range warnings {
		s.logger.Warn("payroll sanity warning",
			slog.String("code", w.Code),
			slog.String("employee_id", w.EmployeeID),
			slog.String("message", w.Message),
			slog.Int("period_month", req.PeriodMonth),
			slog.Int("period_year", req.PeriodYear),
		)
	}

	return payroll.RunPayrollResponse{
		PeriodMonth:  req.PeriodMonth,
		PeriodYear:   req.PeriodYear,
		BusinessDays: cal.BusinessDays,
		RestDays:     cal.RestDays,
		Records:      records,
		Warnings:     mapWarningResponses(warnings),
	}, nil
}

// GetStatement implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetStatement(ctx context.Context, employeeID string, month, year int) (payroll.StatementResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return payroll.StatementResponse{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.StatementResponse{}, err
	}

	punches, err := s.punchRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return payroll.StatementResponse{}, fmt.Errorf("failed to load punches: %w", err)
	}

	entries, err := s.ledgerRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return payroll.StatementResponse{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	holidays, err := s.holidayRepo.ListActiveByYear(ctx, year)
	if err != nil {
		return payroll.StatementResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	cal := MonthCalendar(year, month, holidays)
	record, _ := s.computeEmployee(emp, month, year, punches, entries, cal)

	return payroll.StatementResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PeriodMonth:  month,
		PeriodYear:   year,
		Days:         buildStatementDays(punches, entries),
		Record:       mapRecordResponse(record),
	}, nil
}

// computeEmployee runs the full per-employee pipeline: timesheet, week
// grouping, DSR, assembly and the DSR-ratio check.
func (s *PayrollServiceImpl) computeEmployee(
	emp employee.Employee,
	month, year int,
	punches []timeclock.Punch,
	entries []ledger.Entry,
	cal payroll.CalendarInfo,
) (payroll.Record, []payroll.Warning) {
	dayMinutes := MonthTimesheet(punches)
	weeks := GroupByWeek(punches)
	dsr := ComputeDSR(dayMinutes, weeks, emp.HourlyRate, cal)
	record := AssembleRecord(emp, month, year, dayMinutes, dsr, entries)
	warnings := CheckDSRRatio(emp.ID, record.DSR, record.BasePay)
	return record, warnings
}

func buildStatementDays(punches []timeclock.Punch, entries []ledger.Entry) []payroll.StatementDayResponse {
	punchesByDay := make(map[string][]timeclock.Punch)
	for _, p := range punches {
		punchesByDay[p.DateKey()] = append(punchesByDay[p.DateKey()], p)
	}
	entriesByDay := make(map[string][]ledger.Entry)
	for _, e := range entries {
		entriesByDay[e.DateKey()] = append(entriesByDay[e.DateKey()], e)
	}

	daySet := make(map[string]struct{})
	for day := range punchesByDay {
		daySet[day] = struct{}{}
	}
	for day := range entriesByDay {
		daySet[day] = struct{}{}
	}

	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]payroll.StatementDayResponse, 0, len(days))
	for _, day := range days {
		dayPunches := punchesByDay[day]
		sort.SliceStable(dayPunches, func(i, j int) bool {
			return dayPunches[i].Time < dayPunches[j].Time
		})

		statementPunches := make([]payroll.StatementPunch, 0, len(dayPunches))
		for _, p := range dayPunches {
			statementPunches = append(statementPunches, payroll.StatementPunch{
				Time: p.Time,
				Kind: string(p.Kind),
			})
		}

		var statementEntries []payroll.StatementEntry
		for _, e := range entriesByDay[day] {
			statementEntries = append(statementEntries, payroll.StatementEntry{
				Kind:        string(e.Kind),
				Amount:      e.Amount,
				Description: e.Description,
			})
		}

		result = append(result, payroll.StatementDayResponse{
			Date:    day,
			Minutes: DayMinutes(dayPunches),
			Punches: statementPunches,
			Entries: statementEntries,
		})
	}

	return result
}

func mapRecordResponse(r payroll.Record) payroll.RecordResponse {
	return payroll.RecordResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Role:         r.Role,
		PeriodMonth:  r.PeriodMonth,
		PeriodYear:   r.PeriodYear,

		DaysWorked:  r.DaysWorked,
		WorkedHours: r.WorkedHours,

		BasePay:       r.BasePay,
		OvertimeHours: r.OvertimeHours,
		OvertimePay:   r.OvertimePay,
		HolidayHours:  r.HolidayHours,
		HolidayPay:    r.HolidayPay,
		DSR:           r.DSR,
		GrossWithDSR:  r.GrossWithDSR,

		BonusTotal:     r.BonusTotal,
		AdvanceTotal:   r.AdvanceTotal,
		DeductionTotal: r.DeductionTotal,
		NetPay:         r.NetPay,
	}
}

func mapWarningResponses(warnings []payroll.Warning) []payroll.WarningResponse {
	result := make([]payroll.WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		result = append(result, payroll.WarningResponse{
			Code:       w.Code,
			EmployeeID: w.EmployeeID,
			Message:    w.Message,
		})
	}
	return result
}
