// Package reference carries a built-in catalog of core Arduino API entries
// and a full-text index over it, so hint consumers can jump from a
// suggestion to the relevant documentation without network access.
package reference

// Entry is one documented API item.
type Entry struct {
	Name      string   `json:"name"`
	Signature string   `json:"signature"`
	Summary   string   `json:"summary"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
}

// Entries returns the built-in catalog. The slice is freshly allocated per
// call; callers may reorder or filter it.
func Entries() []Entry {
	return []Entry{
		{
			Name:      "pinMode",
			Signature: "void pinMode(uint8_t pin, uint8_t mode)",
			Summary:   "Configures the specified pin to behave as INPUT, OUTPUT, or INPUT_PULLUP.",
			Category:  "digital-io",
			Tags:      []string{"pin", "setup"},
		},
		{
			Name:      "digitalWrite",
			Signature: "void digitalWrite(uint8_t pin, uint8_t value)",
			Summary:   "Writes HIGH or LOW to a digital pin configured as OUTPUT.",
			Category:  "digital-io",
			Tags:      []string{"pin", "output"},
		},
		{
			Name:      "digitalRead",
			Signature: "int digitalRead(uint8_t pin)",
			Summary:   "Reads HIGH or LOW from a digital pin.",
			Category:  "digital-io",
			Tags:      []string{"pin", "input"},
		},
		{
			Name:      "analogRead",
			Signature: "int analogRead(uint8_t pin)",
			Summary:   "Reads a 10-bit value (0-1023 on AVR) from an analog input pin.",
			Category:  "analog-io",
			Tags:      []string{"adc", "sensor"},
		},
		{
			Name:      "analogWrite",
			Signature: "void analogWrite(uint8_t pin, int value)",
			Summary:   "Writes a PWM duty cycle (0-255) to a PWM-capable pin.",
			Category:  "analog-io",
			Tags:      []string{"pwm", "output"},
		},
		{
			Name:      "delay",
			Signature: "void delay(unsigned long ms)",
			Summary:   "Blocks execution for the given number of milliseconds. Prefer millis() for non-blocking timing in loop().",
			Category:  "timing",
			Tags:      []string{"blocking", "millis"},
		},
		{
			Name:      "delayMicroseconds",
			Signature: "void delayMicroseconds(unsigned int us)",
			Summary:   "Blocks for the given number of microseconds; accurate for small values.",
			Category:  "timing",
			Tags:      []string{"blocking"},
		},
		{
			Name:      "millis",
			Signature: "unsigned long millis(void)",
			Summary:   "Returns milliseconds since the program started; overflows after about 50 days.",
			Category:  "timing",
			Tags:      []string{"non-blocking", "timer"},
		},
		{
			Name:      "micros",
			Signature: "unsigned long micros(void)",
			Summary:   "Returns microseconds since the program started; overflows after about 70 minutes.",
			Category:  "timing",
			Tags:      []string{"timer"},
		},
		{
			Name:      "Serial.begin",
			Signature: "void Serial.begin(unsigned long baud)",
			Summary:   "Opens the serial port at the given baud rate. Allocates RX/TX buffers in RAM.",
			Category:  "communication",
			Tags:      []string{"serial", "uart", "monitor"},
		},
		{
			Name:      "Serial.print",
			Signature: "size_t Serial.print(value)",
			Summary:   "Prints data to the serial port as human-readable text. Open the Serial Monitor to see output.",
			Category:  "communication",
			Tags:      []string{"serial", "monitor", "debug"},
		},
		{
			Name:      "Serial.println",
			Signature: "size_t Serial.println(value)",
			Summary:   "Like Serial.print but appends a carriage return and newline.",
			Category:  "communication",
			Tags:      []string{"serial", "monitor", "debug"},
		},
		{
			Name:      "Wire.begin",
			Signature: "void Wire.begin()",
			Summary:   "Joins the I2C bus as a controller; Wire.begin(address) joins as a peripheral.",
			Category:  "communication",
			Tags:      []string{"i2c", "twi"},
		},
		{
			Name:      "attachInterrupt",
			Signature: "void attachInterrupt(uint8_t interrupt, void (*isr)(void), int mode)",
			Summary:   "Runs an ISR when an external interrupt fires (LOW, CHANGE, RISING, FALLING). Keep ISRs short; shared variables must be volatile.",
			Category:  "interrupts",
			Tags:      []string{"isr", "volatile"},
		},
		{
			Name:      "map",
			Signature: "long map(long x, long inMin, long inMax, long outMin, long outMax)",
			Summary:   "Re-maps a number from one range to another using integer math.",
			Category:  "math",
			Tags:      []string{"range", "scale"},
		},
		{
			Name:      "constrain",
			Signature: "constrain(x, a, b)",
			Summary:   "Clamps x to the range [a, b].",
			Category:  "math",
			Tags:      []string{"clamp"},
		},
		{
			Name:      "random",
			Signature: "long random(long min, long max)",
			Summary:   "Returns a pseudo-random number; seed with randomSeed(analogRead(unconnectedPin)) for variety.",
			Category:  "math",
			Tags:      []string{"prng", "randomSeed"},
		},
		{
			Name:      "tone",
			Signature: "void tone(uint8_t pin, unsigned int frequency, unsigned long duration)",
			Summary:   "Generates a square wave of the given frequency on a pin; interferes with PWM on pins 3 and 11 on AVR.",
			Category:  "analog-io",
			Tags:      []string{"sound", "pwm"},
		},
		{
			Name:      "pulseIn",
			Signature: "unsigned long pulseIn(uint8_t pin, uint8_t state, unsigned long timeout)",
			Summary:   "Measures the length of a HIGH or LOW pulse on a pin in microseconds.",
			Category:  "digital-io",
			Tags:      []string{"timing", "sensor"},
		},
		{
			Name:      "String",
			Signature: "class String",
			Summary:   "Heap-allocated string class; each object costs RAM and fragmentation grows with concatenation. Prefer char arrays on small boards.",
			Category:  "data",
			Tags:      []string{"memory", "heap"},
		},
		{
			Name:      "PROGMEM",
			Signature: "const type name[] PROGMEM = {...}",
			Summary:   "Stores data in flash instead of RAM on AVR; read back with pgm_read_* or the F() macro for literals.",
			Category:  "data",
			Tags:      []string{"memory", "flash", "F-macro"},
		},
		{
			Name:      "LED_BUILTIN",
			Signature: "LED_BUILTIN",
			Summary:   "Board-defined constant for the built-in LED pin (13 on Uno). Use it instead of hardcoding 13.",
			Category:  "constants",
			Tags:      []string{"led", "pin"},
		},
	}
}
