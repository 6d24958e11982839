package healthion

import (
	"time"

	"github.com/google/uuid"
)

type UserInfo struct {
	UserID      uuid.UUID `json:"user_id"`
	Auth0ID     string    `json:"auth0_id"`
	Email       string    `json:"email"`
	Permissions []string  `json:"permissions"`
}

type Provider struct {
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name"`
	IconURL     *string `json:"icon_url"`
	HasCloudAPI bool    `json:"has_cloud_api"`
	IsEnabled   bool    `json:"is_enabled"`
}

// Label prefers the display name.
func (p Provider) Label() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.Name
}

type ProvidersResponse struct {
	Providers []Provider `json:"providers"`
}

type AuthorizationResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Provider         string `json:"provider"`
}

type Connection struct {
	ID          uuid.UUID  `json:"id"`
	Provider    string     `json:"provider"`
	ConnectedAt *time.Time `json:"connected_at"`
	IsActive    bool       `json:"is_active"`
	LastSync    *time.Time `json:"last_sync"`
}

type ConnectionsResponse struct {
	Connections         []Connection `json:"connections"`
	OpenWearablesUserID *uuid.UUID   `json:"open_wearables_user_id"`
}

type DataPoint struct {
	Timestamp time.Time  `json:"timestamp"`
	Type      SeriesType `json:"type"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
}

type TimeseriesResponse struct {
	Data       []DataPoint `json:"data"`
	SeriesType SeriesType  `json:"series_type"`
	UserID     uuid.UUID   `json:"user_id"`
	Count      int         `json:"count"`
}

type SyncRequest struct {
	Provider string       `json:"provider"`
	DataType SyncDataType `json:"data_type"`
}

type SyncResponse struct {
	Status      string  `json:"status"`
	Message     *string `json:"message"`
	SyncedCount int     `json:"synced_count"`
}

type RegisterResponse struct {
	OpenWearablesUserID uuid.UUID `json:"open_wearables_user_id"`
	AlreadyRegistered   bool      `json:"already_registered"`
}

type Workout struct {
	ID              uuid.UUID  `json:"id"`
	Type            *string    `json:"type"`
	SourceName      *string    `json:"source_name"`
	StartDatetime   time.Time  `json:"start_datetime"`
	EndDatetime     *time.Time `json:"end_datetime"`
	DurationSeconds *int       `json:"duration_seconds"`
	Provider        *string    `json:"provider"`
}

type WorkoutsResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type DataSource struct {
	Provider string  `json:"provider"`
	Device   *string `json:"device"`
}

type EventWorkout struct {
	ID                  uuid.UUID  `json:"id"`
	Type                string     `json:"type"`
	Name                *string    `json:"name"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             time.Time  `json:"end_time"`
	DurationSeconds     *int       `json:"duration_seconds"`
	Source              DataSource `json:"source"`
	CaloriesKcal        *float64   `json:"calories_kcal"`
	DistanceMeters      *float64   `json:"distance_meters"`
	AvgHeartRateBPM     *int       `json:"avg_heart_rate_bpm"`
	MaxHeartRateBPM     *int       `json:"max_heart_rate_bpm"`
	AvgPaceSecPerKm     *int       `json:"avg_pace_sec_per_km"`
	ElevationGainMeters *float64   `json:"elevation_gain_meters"`
}

type WorkoutDetail struct {
	EventWorkout

	AvgSpeedMPS             *float64 `json:"avg_speed_mps"`
	MaxSpeedMPS             *float64 `json:"max_speed_mps"`
	AvgCadence              *int     `json:"avg_cadence"`
	AvgPowerWatts           *int     `json:"avg_power_watts"`
	TrainingEffectAerobic   *float64 `json:"training_effect_aerobic"`
	TrainingEffectAnaerobic *float64 `json:"training_effect_anaerobic"`
}

type SleepStages struct {
	AwakeSeconds *int `json:"awake_seconds"`
	LightSeconds *int `json:"light_seconds"`
	DeepSeconds  *int `json:"deep_seconds"`
	REMSeconds   *int `json:"rem_seconds"`
}

type SleepSession struct {
	ID                uuid.UUID    `json:"id"`
	StartTime         time.Time    `json:"start_time"`
	EndTime           time.Time    `json:"end_time"`
	Source            DataSource   `json:"source"`
	DurationSeconds   int          `json:"duration_seconds"`
	EfficiencyPercent *float64     `json:"efficiency_percent"`
	Stages            *SleepStages `json:"stages"`
	IsNap             bool         `json:"is_nap"`
}

type IntensityMinutes struct {
	Light    *int `json:"light"`
	Moderate *int `json:"moderate"`
	Vigorous *int `json:"vigorous"`
}

type ActivitySummary struct {
	Date                     string            `json:"date"`
	Source                   DataSource        `json:"source"`
	Steps                    *int              `json:"steps"`
	DistanceMeters           *float64          `json:"distance_meters"`
	FloorsClimbed            *int              `json:"floors_climbed"`
	ActiveCaloriesKcal       *float64          `json:"active_calories_kcal"`
	TotalCaloriesKcal        *float64          `json:"total_calories_kcal"`
	ActiveDurationSeconds    *int              `json:"active_duration_seconds"`
	SedentaryDurationSeconds *int              `json:"sedentary_duration_seconds"`
	IntensityMinutes         *IntensityMinutes `json:"intensity_minutes"`
}

type SleepSummary struct {
	Date               string       `json:"date"`
	Source             DataSource   `json:"source"`
	StartTime          *time.Time   `json:"start_time"`
	EndTime            *time.Time   `json:"end_time"`
	DurationSeconds    *int         `json:"duration_seconds"`
	TimeInBedSeconds   *int         `json:"time_in_bed_seconds"`
	EfficiencyPercent  *float64     `json:"efficiency_percent"`
	Stages             *SleepStages `json:"stages"`
	InterruptionsCount *int         `json:"interruptions_count"`
	AvgHeartRateBPM    *int         `json:"avg_heart_rate_bpm"`
	AvgHRVRmssdMs      *float64     `json:"avg_hrv_rmssd_ms"`
	AvgRespiratoryRate *float64     `json:"avg_respiratory_rate"`
	AvgSpO2Percent     *float64     `json:"avg_spo2_percent"`
}

type RecoverySummary struct {
	Date                   string     `json:"date"`
	Source                 DataSource `json:"source"`
	SleepDurationSeconds   *int       `json:"sleep_duration_seconds"`
	SleepEfficiencyPercent *float64   `json:"sleep_efficiency_percent"`
	RestingHeartRateBPM    *int       `json:"resting_heart_rate_bpm"`
	AvgHRVRmssdMs          *float64   `json:"avg_hrv_rmssd_ms"`
	AvgSpO2Percent         *float64   `json:"avg_spo2_percent"`
	RecoveryScore          *int       `json:"recovery_score"`
}

type BloodPressure struct {
	SystolicMmHg  *int `json:"systolic_mmhg"`
	DiastolicMmHg *int `json:"diastolic_mmhg"`
}

type BodySummary struct {
	Date                        string         `json:"date"`
	Source                      DataSource     `json:"source"`
	WeightKg                    *float64       `json:"weight_kg"`
	BodyFatPercent              *float64       `json:"body_fat_percent"`
	MuscleMassKg                *float64       `json:"muscle_mass_kg"`
	BMI                         *float64       `json:"bmi"`
	RestingHeartRateBPM         *int           `json:"resting_heart_rate_bpm"`
	AvgHRVRmssdMs               *float64       `json:"avg_hrv_rmssd_ms"`
	BloodPressure               *BloodPressure `json:"blood_pressure"`
	BasalBodyTemperatureCelsius *float64       `json:"basal_body_temperature_celsius"`
}

type AppleHealthImportResponse struct {
	Status           string   `json:"status"`
	Message          *string  `json:"message"`
	RecordsImported  int      `json:"records_imported"`
	WorkoutsImported int      `json:"workouts_imported"`
	Errors           []string `json:"errors"`
}

type SeriesTypeInfo struct {
	Name        SeriesType `json:"name"`
	Description *string    `json:"description"`
	Unit        *string    `json:"unit"`
	Category    *string    `json:"category"`
}

type SeriesTypesResponse struct {
	Types []SeriesTypeInfo `json:"types"`
	Total int              `json:"total"`
}
