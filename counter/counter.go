package counter

// Counter defines the acquisition interface of a frequency/time-interval
// counter driver.
//
// The trigger system must be configured with ConfigureTrigger before any of
// Freq, Period or TimeInterval is accepted; a measurement requested earlier
// fails with ErrTriggerNotConfigured and emits no commands.
type Counter interface {
	// Open asks the device for its identification text and returns it.
	Open() (string, error)

	// Close terminates the underlying device session.
	Close() error

	// Reset restores all device parameters to their default values.
	Reset() error

	// ConfigureTrigger applies common trigger system settings from a
	// configuration string. Expected keys (all optional, absent keys retain
	// previous device state):
	//
	//	cnt (int) : triggers accepted before returning to idle, range [1, 1000000]
	//	del (real): delay in seconds between trigger and gate open, range [0, 3600]
	//	sou (str) : trigger source, one of imm, bus, ext
	//	slo (str) : trigger edge, pos (rising) or neg (falling)
	//
	// Validation is all-or-nothing per call: one invalid key fails the whole
	// call with ErrInvalidParameter and no command is emitted.
	ConfigureTrigger(cfgstr string) error

	// TrigLevel sets the trigger mode and level of the channels named in the
	// configuration string. Expected keys:
	//
	//	trig<ch>:<value> where value is a voltage (e.g. 2.5) or the auto
	//	marker followed by a percentage of the signal amplitude (e.g. a50).
	TrigLevel(cfgstr string) error

	// Freq measures the frequency of the input signal in a channel and appends
	// the samples to out. When stream is true and more than one sample is
	// requested, samples are fetched in bounded chunks while the acquisition
	// is still running. Expected keys:
	//
	//	ch (int)    : channel index, 1 or 2
	//	cou (str)   : input coupling, ac or dc
	//	exp (str)   : expected frequency value, e.g. 125E6 (optional)
	//	res (int)   : resolution digits (optional)
	//	sampl (int) : how many samples to take (optional, default 1)
	Freq(cfgstr string, out MeasuredData, stream bool) error

	// Period measures the period of the input signal on each channel named in
	// the configuration string (keys ch1, ch2), one blocking reading per
	// channel.
	Period(cfgstr string) error

	// TimeInterval measures the time interval between the two input channels
	// and appends the readings to out. Expected keys:
	//
	//	ref (str)    : reference channel; "A" selects channel 1, anything else channel 2
	//	sampl (int)  : samples to take, range [1, 1000000]
	//	cou (str)    : input coupling, ac or dc
	//	imp (real)   : input impedance in ohm
	//	tstamp (str) : "Y" to pair each reading with a host-side timestamp
	TimeInterval(cfgstr string, out MeasuredData) error
}
