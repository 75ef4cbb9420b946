package main

import (
	"flag"
	"log"
	"os"
	"path"
	"reflect"

	"github.com/robotalks/ledfield/pkg/monitor/msgs"
	"github.com/robotalks/ledfield/pkg/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/ledfield/"
)

func init() {
	if val := os.Getenv("LEDFIELD_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL, "")
	if err != nil {
		log.Fatalln(err)
	}
	if err := q.Connect(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	handler := mqtt.Handler(func(topic string, payload []byte) {
		msg, err := msgs.Decode(path.Base(topic), payload)
		if err != nil {
			log.Printf("%s: decode error: %v", topic, err)
			return
		}
		log.Printf("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(), msg.String())
	})
	q.Sub("+/"+msgs.TopicByte, handler)
	q.Sub("+/"+msgs.TopicSilence, handler)
	<-(chan struct{})(nil)
}
