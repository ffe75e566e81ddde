package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/calculation"
	"github.com/eriiiic/Retirement/internal/domain"
	"github.com/eriiiic/Retirement/internal/output"
)

// adjustable is one parameter row the user can step up or down. Steps go
// through the parameter set so every adjustment triggers a fresh projection.
type adjustable struct {
	label string
	value func(p *domain.SimulationParameters) string
	step  func(p *domain.SimulationParameters, dir int)
}

// Model is the interactive session state: one scenario, its current
// parameters and the latest projection of them.
type Model struct {
	scenarioName string
	params       domain.SimulationParameters

	engine *calculation.ProjectionEngine
	report *domain.ProjectionReport

	fields []adjustable
	cursor int

	width  int
	height int

	err error
}

// NewModel seeds the session with a named parameter set.
func NewModel(name string, params domain.SimulationParameters) Model {
	return Model{
		scenarioName: name,
		params:       params.Normalized(),
		engine:       calculation.NewProjectionEngine(),
		fields:       adjustableFields(),
		width:        80,
		height:       24,
	}
}

// Init kicks off the first projection.
func (m Model) Init() tea.Cmd {
	return projectCmd(m.engine, m.scenarioName, m.params)
}

// projectCmd returns a command that runs one projection.
func projectCmd(engine *calculation.ProjectionEngine, name string, params domain.SimulationParameters) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.RunScenario(name, params)
		return ProjectionCompleteMsg{Report: report, Err: err}
	}
}

// adjustableFields lists the parameter rows in display order.
func adjustableFields() []adjustable {
	stepMoney := func(v decimal.Decimal, dir int, step int64) decimal.Decimal {
		out := v.Add(decimal.NewFromInt(step * int64(dir)))
		if out.IsNegative() {
			return decimal.Zero
		}
		return out
	}
	stepRate := func(v decimal.Decimal, dir int) decimal.Decimal {
		out := v.Add(decimal.NewFromFloat(0.25).Mul(decimal.NewFromInt(int64(dir))))
		if out.IsNegative() {
			return decimal.Zero
		}
		return out
	}

	return []adjustable{
		{
			label: "Initial capital",
			value: func(p *domain.SimulationParameters) string { return output.FormatCurrency(p.InitialCapital) },
			step: func(p *domain.SimulationParameters, dir int) {
				p.InitialCapital = stepMoney(p.InitialCapital, dir, 5000)
			},
		},
		{
			label: "Monthly contribution",
			value: func(p *domain.SimulationParameters) string { return output.FormatCurrency(p.MonthlyContribution) },
			step: func(p *domain.SimulationParameters, dir int) {
				p.MonthlyContribution = stepMoney(p.MonthlyContribution, dir, 50)
			},
		},
		{
			label: "Annual growth rate",
			value: func(p *domain.SimulationParameters) string {
				return output.FormatPercentage(p.AnnualGrowthRatePercent)
			},
			step: func(p *domain.SimulationParameters, dir int) {
				p.AnnualGrowthRatePercent = stepRate(p.AnnualGrowthRatePercent, dir)
			},
		},
		{
			label: "Annual inflation rate",
			value: func(p *domain.SimulationParameters) string {
				return output.FormatPercentage(p.AnnualInflationRatePercent)
			},
			step: func(p *domain.SimulationParameters, dir int) {
				p.AnnualInflationRatePercent = stepRate(p.AnnualInflationRatePercent, dir)
			},
		},
		{
			label: "Retirement (age or year)",
			value: func(p *domain.SimulationParameters) string {
				return intString(p.RetirementInput)
			},
			step: func(p *domain.SimulationParameters, dir int) {
				p.RetirementInput += dir
			},
		},
		{
			label: "Withdrawal",
			value: func(p *domain.SimulationParameters) string {
				switch p.Strategy.Kind {
				case domain.StrategyFixedAmount:
					return output.FormatCurrency(p.Strategy.MonthlyWithdrawal) + "/month"
				case domain.StrategyTargetEndAge:
					return "until age " + intString(p.Strategy.MaxAge)
				case domain.StrategyRateOfCapital:
					return output.FormatPercentage(p.Strategy.AnnualRatePercent) + "/year"
				default:
					return string(p.Strategy.Kind)
				}
			},
			step: func(p *domain.SimulationParameters, dir int) {
				switch p.Strategy.Kind {
				case domain.StrategyFixedAmount:
					p.Strategy.MonthlyWithdrawal = stepMoney(p.Strategy.MonthlyWithdrawal, dir, 100)
				case domain.StrategyTargetEndAge:
					p.Strategy.MaxAge += dir
				case domain.StrategyRateOfCapital:
					p.Strategy.AnnualRatePercent = stepRate(p.Strategy.AnnualRatePercent, dir)
				}
			},
		},
		{
			label: "Compounding",
			value: func(p *domain.SimulationParameters) string { return string(p.Compounding) },
			step: func(p *domain.SimulationParameters, dir int) {
				if p.Compounding == domain.CompoundingMonthly {
					p.Compounding = domain.CompoundingAnnual
				} else {
					p.Compounding = domain.CompoundingMonthly
				}
			},
		},
	}
}
