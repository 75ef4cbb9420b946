package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/ledfield/pkg/framework"
	"github.com/robotalks/ledfield/pkg/monitor"
	"github.com/robotalks/ledfield/pkg/mqtt"
	"github.com/robotalks/ledfield/pkg/serial"
)

func init() {
	serial.SetupFlags()
	monitor.SetupFlags()
}

func main() {
	flag.Parse()

	serialConf, monConf := serial.Default(), monitor.Default()
	port, err := serialConf.Open()
	if err != nil {
		log.Fatalln(err)
	}
	glog.Infof("listening on %s at %d baud", serialConf.Port, serialConf.Options.BaudRate)

	var pub monitor.Publisher
	if monConf.MQTTBrokerURL != "" {
		q, err := mqtt.NewQueueFromURL(monConf.MQTTBrokerURL, monConf.MonitorID())
		if err != nil {
			log.Fatalln(err)
		}
		if err := q.Connect(); err != nil {
			glog.Warningf("publishing disabled: %v", err)
		} else {
			defer q.Close()
			pub = q
		}
	}

	mon := monConf.NewMonitor(port, serialConf.Options.ReadTimeout, os.Stdout, pub)
	err = fx.NewRunner().HandleSignals().Run(fx.RunFunc(func(ctx context.Context) error {
		return fx.RunWithContextCloser(ctx, port, func() error {
			return mon.Run(ctx)
		})
	}))
	if err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}
