package jcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerUpEventRoundTrip(t *testing.T) {
	data := PowerUpAcceptorEvent{}.ToMessageData(ConfIdAcceptor, 0, 5)
	assert.True(t, data.MessageType.IsEvent())
	assert.Equal(t, uint8(5), data.MessageType.EventSequence())
	assert.True(t, data.Code.IsEvent())
	assert.Equal(t, EventPowerUpAcceptor, data.Code.Event)

	_, err := PowerUpAcceptorEventFromMessageData(data)
	require.NoError(t, err)
}

func TestEscrowEventDisambiguatesCurrencyVsTicket(t *testing.T) {
	currency := Currency{Code: [3]byte{'U', 'S', 'D'}, Denomination: DenominationFromValue(2000)}
	currencyData := EscrowEvent{Currency: &currency}.ToMessageData(ConfIdAcceptorEscrow, 0, 1)

	decoded, err := EscrowEventFromMessageData(currencyData)
	require.NoError(t, err)
	require.NotNil(t, decoded.Currency)
	assert.Nil(t, decoded.Ticket)
	assert.Equal(t, currency, *decoded.Currency)

	ticket := Ticket{Code: "ABC123"}
	ticketData := EscrowEvent{Ticket: &ticket}.ToMessageData(ConfIdAcceptorEscrow, 0, 2)

	decodedTicket, err := EscrowEventFromMessageData(ticketData)
	require.NoError(t, err)
	require.NotNil(t, decodedTicket.Ticket)
	assert.Nil(t, decodedTicket.Currency)
	assert.Equal(t, ticket, *decodedTicket.Ticket)
}

func TestFailureEventRoundTrip(t *testing.T) {
	data := FailureEvent{Code: FailureStackMotor}.ToMessageData(ConfIdAcceptor, 0, 3)
	decoded, err := FailureEventFromMessageData(data)
	require.NoError(t, err)
	assert.Equal(t, FailureStackMotor, decoded.Code)
}

func TestEventMessageTypeRejectsMismatchedEventCode(t *testing.T) {
	data := PowerUpEvent{}.ToMessageData(ConfIdAcceptor, 0, 1)
	_, err := PowerUpStackerEventFromMessageData(data)
	require.Error(t, err)
}
