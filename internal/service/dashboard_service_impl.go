package service

import (
	"context"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/repository"
)

const urgentQueueLimit = 5

type dashboardService struct {
	projects repository.ProjectRepo
}

func NewDashboardService(projects repository.ProjectRepo) DashboardService {
	return &dashboardService{projects: projects}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	projects := derefProjects(all)
	return &Overview{
		Stats:    dashboard.ComputeStats(projects),
		Urgent:   dashboard.UrgentQueue(projects, urgentQueueLimit),
		Chart:    dashboard.Chart(projects),
		Projects: projects,
	}, nil
}
