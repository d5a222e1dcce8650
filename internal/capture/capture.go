// Package capture listens for drone Remote ID broadcasts on a monitor-mode
// interface.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/sirupsen/logrus"

	"github.com/ridwatch/ridwatch/internal/sighting"
	"github.com/ridwatch/ridwatch/pkg/rid"
)

// Sniffer captures beacon frames and feeds decoded Remote ID packs into a
// sighting tracker.
type Sniffer struct {
	iface   string
	handle  *pcap.Handle
	tracker *sighting.Tracker
	log     *logrus.Logger
}

func NewSniffer(iface string, tracker *sighting.Tracker, log *logrus.Logger) *Sniffer {
	return &Sniffer{
		iface:   iface,
		tracker: tracker,
		log:     log,
	}
}

// Start begins capturing and processing beacon frames.
func (s *Sniffer) Start(ctx context.Context) error {
	handle, err := pcap.OpenLive(s.iface, 65536, true, pcap.BlockForever)
	if err != nil {
		return fmt.Errorf("open pcap on %s: %w", s.iface, err)
	}
	s.handle = handle

	// Beacons only; anything else is noise for us.
	if err := handle.SetBPFFilter("type mgt subtype beacon"); err != nil {
		s.log.WithError(err).Warn("could not set BPF filter, capturing unfiltered")
	}

	source := gopacket.NewPacketSource(handle, handle.LinkType())
	source.NoCopy = true

	go s.processPackets(ctx, source)

	return nil
}

// Stop closes the pcap handle.
func (s *Sniffer) Stop() {
	if s.handle != nil {
		s.handle.Close()
	}
}

func (s *Sniffer) processPackets(ctx context.Context, source *gopacket.PacketSource) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		packet, err := source.NextPacket()
		if err != nil {
			continue
		}

		s.handlePacket(packet)
	}
}

func (s *Sniffer) handlePacket(packet gopacket.Packet) {
	signal := -100
	if rtLayer := packet.Layer(layers.LayerTypeRadioTap); rtLayer != nil {
		rt := rtLayer.(*layers.RadioTap)
		if rt.DBMAntennaSignal != 0 {
			signal = int(rt.DBMAntennaSignal)
		}
	}

	dot11Layer := packet.Layer(layers.LayerTypeDot11)
	if dot11Layer == nil {
		return
	}
	if dot11Layer.(*layers.Dot11).Type != layers.Dot11TypeMgmtBeacon {
		return
	}

	for _, layer := range packet.Layers() {
		ie, ok := layer.(*layers.Dot11InformationElement)
		if !ok || ie.ID != layers.Dot11InformationElementIDVendor {
			continue
		}
		if len(ie.OUI) < 4 || ie.OUI[3] != remoteIDOUIType {
			continue
		}
		s.handleRemoteID(ie.Info, signal)
	}
}

func (s *Sniffer) handleRemoteID(payload []byte, signal int) {
	packs, err := SplitPacks(payload)
	if err != nil {
		s.log.WithError(err).Debug("malformed remote id element")
		return
	}

	msgs := make([]rid.Message, 0, len(packs))
	for _, pack := range packs {
		msg, err := rid.Decode(pack)
		if err != nil {
			s.log.WithError(err).Debug("undecodable remote id pack")
			continue
		}
		msgs = append(msgs, msg)
	}

	if sg := s.tracker.Record(msgs, signal, time.Now()); sg != nil {
		s.log.WithFields(logrus.Fields{
			"uas_id": sg.UASID,
			"lat":    fmt.Sprintf("%.6f", sg.Latitude),
			"lon":    fmt.Sprintf("%.6f", sg.Longitude),
			"signal": sg.SignalDBM,
		}).Info("remote id sighting")
	}
}
