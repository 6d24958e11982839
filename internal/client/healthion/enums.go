package healthion

type SeriesType string

const (
	SeriesTypeHeartRate                 SeriesType = "heart_rate"
	SeriesTypeRestingHeartRate          SeriesType = "resting_heart_rate"
	SeriesTypeHeartRateVariabilitySDNN  SeriesType = "heart_rate_variability_sdnn"
	SeriesTypeHeartRateRecoveryOneMin   SeriesType = "heart_rate_recovery_one_minute"
	SeriesTypeWalkingHeartRateAverage   SeriesType = "walking_heart_rate_average"
	SeriesTypeOxygenSaturation          SeriesType = "oxygen_saturation"
	SeriesTypeBloodGlucose              SeriesType = "blood_glucose"
	SeriesTypeBloodPressureSystolic     SeriesType = "blood_pressure_systolic"
	SeriesTypeBloodPressureDiastolic    SeriesType = "blood_pressure_diastolic"
	SeriesTypeRespiratoryRate           SeriesType = "respiratory_rate"
	SeriesTypeWeight                    SeriesType = "weight"
	SeriesTypeBodyFatPercentage         SeriesType = "body_fat_percentage"
	SeriesTypeBodyTemperature           SeriesType = "body_temperature"
	SeriesTypeVO2Max                    SeriesType = "vo2_max"
	SeriesTypeSteps                     SeriesType = "steps"
	SeriesTypeEnergy                    SeriesType = "energy"
	SeriesTypeBasalEnergy               SeriesType = "basal_energy"
	SeriesTypeFlightsClimbed            SeriesType = "flights_climbed"
	SeriesTypeDistanceWalkingRunning    SeriesType = "distance_walking_running"
	SeriesTypeDistanceCycling           SeriesType = "distance_cycling"
	SeriesTypeSleepingBreathingDisturbs SeriesType = "sleeping_breathing_disturbances"
)

// DefaultSeriesType is what the API returns when no types are requested.
const DefaultSeriesType = SeriesTypeHeartRate

type Resolution string

const (
	ResolutionRaw     Resolution = "raw"
	Resolution1Min    Resolution = "1min"
	Resolution5Min    Resolution = "5min"
	Resolution15Min   Resolution = "15min"
	Resolution1Hour   Resolution = "1hour"
	DefaultResolution            = ResolutionRaw
)

var resolutions = map[Resolution]struct{}{
	ResolutionRaw:   {},
	Resolution1Min:  {},
	Resolution5Min:  {},
	Resolution15Min: {},
	Resolution1Hour: {},
}

func (r Resolution) Valid() bool {
	_, ok := resolutions[r]
	return ok
}

type SummaryKind string

const (
	SummaryActivity SummaryKind = "activity"
	SummarySleep    SummaryKind = "sleep"
	SummaryRecovery SummaryKind = "recovery"
	SummaryBody     SummaryKind = "body"
)

// SyncDataType selects what a provider sync pulls.
type SyncDataType string

const (
	SyncAll      SyncDataType = "all"
	SyncWorkouts SyncDataType = "workouts"
	Sync247      SyncDataType = "247"
)
