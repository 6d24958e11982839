package healthion

import (
	"context"
	"net/http"
	"net/url"
)

type workoutService struct {
	client *Client
}

func (s *workoutService) List(ctx context.Context, params *ListParams) (*WorkoutsResponse, error) {
	const route = wearablesPrefix + "/workouts"

	var resp WorkoutsResponse
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *workoutService) Events(ctx context.Context, params *WorkoutEventParams) (*EventsResponse[EventWorkout], error) {
	const route = wearablesPrefix + "/events/workouts"

	var resp EventsResponse[EventWorkout]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *workoutService) Get(ctx context.Context, provider string, id string) (*WorkoutDetail, error) {
	const route = wearablesPrefix + "/workouts"
	path := route + "/" + url.PathEscape(provider) + "/" + url.PathEscape(id)

	var detail WorkoutDetail
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
