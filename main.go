package main

import (
	"context"
	"flag"
	"os"
	"runtime/pprof"

	s "sumo/sim"
	t "sumo/telemetry"
	u "sumo/utils"

	log "github.com/s00500/env_logger"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	configPath = flag.String("config", "", "yaml config file, defaults apply when omitted")
	p1Name     = flag.String("p1", "idle", "strategy for robot 1: idle, creep, charge, seek")
	p2Name     = flag.String("p2", "creep", "strategy for robot 2")
	lockstep   = flag.Bool("lockstep", false, "run strategies and integrator as lock-stepped goroutines")
	headless   = flag.Bool("headless", false, "run the match without the terminal renderer")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// enable line numbers in log
	log.EnableLineNumbers()

	cfg, err := s.LoadConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	strat1 := strategyByName(*p1Name)
	strat2 := strategyByName(*p2Name)
	engine := s.NewEngine(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var frames <-chan s.Frame
	if *lockstep {
		log.Infoln("Running the lock-step driver")
		frames = engine.RunLockstep(ctx, strat1, strat2)
	} else {
		frames = engine.Run(ctx, strat1, strat2)
	}

	var tele *t.Sender
	if cfg.Telemetry != "" {
		tele = t.NewSender(cfg.Telemetry)
		defer tele.Close()
	}

	timer := u.NewTimer()
	timer.Start()

	if *headless {
		for fr := range frames {
			tele.Send(fr)
		}
		log.Infoln("Match done after ", timer.Now())
		return
	}

	if err := runVisuals(cancel, frames, cfg, tele, &timer); err != nil {
		log.Fatalln(err)
	}
}
