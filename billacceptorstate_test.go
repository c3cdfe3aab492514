package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBillAcceptorState(t *testing.T) {
	acceptorUnit := func(avail UnitAvailability) UnitStatus {
		return UnitStatus{
			UnitNumber:     NewUnitNumber(FuncIdAcceptor, 1),
			FunctionStatus: FunctionStatus(uint8(avail) << 7),
		}
	}

	cases := []struct {
		name   string
		status DeviceStatus
		units  []UnitStatus
		want   BillAcceptorState
	}{
		{
			name:   "power up",
			status: DeviceStatusFromU16(0x0000),
			want:   BillAcceptorInitializing,
		},
		{
			name:   "acceptor idle",
			status: DeviceStatusFromU16(FuncIdAcceptor.AsStatusBits() | 0x0101),
			units:  []UnitStatus{acceptorUnit(UnitAvailable)},
			want:   BillAcceptorIdle,
		},
		{
			name:   "acceptor escrow",
			status: DeviceStatusFromU16(FuncIdAcceptor.AsStatusBits() | 0x0103),
			want:   BillAcceptorEscrowed,
		},
		{
			name:   "acceptor vend valid",
			status: DeviceStatusFromU16(FuncIdAcceptor.AsStatusBits() | 0x0104),
			want:   BillAcceptorVendValid,
		},
		{
			name:   "acceptor unit unavailable means inhibited",
			status: DeviceStatusFromU16(FuncIdAcceptor.AsStatusBits() | 0x0101),
			units:  []UnitStatus{acceptorUnit(UnitUnavailable)},
			want:   BillAcceptorInhibited,
		},
		{
			name:   "no named status or inhibited unit falls to reserved",
			status: DeviceStatusFromU16(FuncIdCommon.AsStatusBits() | 0x0105),
			want:   BillAcceptorReserved,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveBillAcceptorState(c.status, c.units))
		})
	}
}
