package sim

// MotorReq is one strategy decision: wheel speeds for the left and
// right motor of a differential drive, in control units. Requests are
// produced fresh every tick and consumed once.
type MotorReq struct {
	MotorL float64
	MotorR float64
}

// Vel is the linear speed the drive develops under this request.
func (r MotorReq) Vel() float64 {
	return (r.MotorL + r.MotorR) / 2
}

// Strategy is the pluggable brain of one robot: it maps the latest ir
// reading to the next motor request. Strategies must be pure; in the
// lock-step driver each one runs on its own goroutine.
type Strategy func(ir float64) MotorReq
