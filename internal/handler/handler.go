package handler

import "github.com/bagdasarian/position-helper/internal/service"

type Handler struct {
	memberService   service.MemberService
	positionService service.PositionService
	absenceService  service.AbsenceService
	chartService    service.ChartService
	exchangeService service.ExchangeService
	activityService service.ActivityService
	themeService    service.ThemeService
}

func NewHandler(
	memberService service.MemberService,
	positionService service.PositionService,
	absenceService service.AbsenceService,
	chartService service.ChartService,
	exchangeService service.ExchangeService,
	activityService service.ActivityService,
	themeService service.ThemeService,
) *Handler {
	return &Handler{
		memberService:   memberService,
		positionService: positionService,
		absenceService:  absenceService,
		chartService:    chartService,
		exchangeService: exchangeService,
		activityService: activityService,
		themeService:    themeService,
	}
}
