package main

import (
	s "sumo/sim"

	log "github.com/s00500/env_logger"
)

// Built in strategies. A strategy only ever sees its own ir reading, a
// single float per tick, so all of these are blind reflex policies.

func idleStrategy(float64) s.MotorReq {
	return s.MotorReq{}
}

func creepStrategy(float64) s.MotorReq {
	return s.MotorReq{MotorL: 0.25, MotorR: 0.25}
}

// chargeStrategy creeps until the opponent is in the forward cone, then
// floors both motors.
func chargeStrategy(ir float64) s.MotorReq {
	if ir > 0 {
		return s.MotorReq{MotorL: 1, MotorR: 1}
	}
	return s.MotorReq{MotorL: 0.25, MotorR: 0.25}
}

// seekStrategy pivots in place until the sensor answers, then drives
// straight at whatever it saw.
func seekStrategy(ir float64) s.MotorReq {
	if ir > 0 {
		return s.MotorReq{MotorL: 0.75, MotorR: 0.75}
	}
	return s.MotorReq{MotorL: -0.1, MotorR: 0.1}
}

func strategyByName(name string) s.Strategy {
	switch name {
	case "idle":
		return idleStrategy
	case "creep":
		return creepStrategy
	case "charge":
		return chargeStrategy
	case "seek":
		return seekStrategy
	}
	log.Fatalln("Unknown strategy:", name)
	return nil
}
