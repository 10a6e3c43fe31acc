package dwg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/cad"
)

func TestNotificationType_String(t *testing.T) {
	require.Equal(t, "NotImplemented", NotImplemented.String())
	require.Equal(t, "NotSupported", NotSupported.String())
	require.Equal(t, "Warning", Warning.String())
	require.Equal(t, "Error", Error.String())
	require.Equal(t, "NotificationType(0)", NotificationType(0).String())
}

func TestNotification_String(t *testing.T) {
	n := Notification{Message: "entity not implemented: Wipeout", Type: NotImplemented, Handle: 0x2F, Kind: cad.KindWipeout}
	require.Equal(t, "NotImplemented: entity not implemented: Wipeout (handle 0x2f)", n.String())
}

func TestNotificationCollector(t *testing.T) {
	c := &NotificationCollector{}
	c.Notify(Notification{Type: NotImplemented})
	c.Notify(Notification{Type: Warning})
	c.Notify(Notification{Type: NotImplemented})

	require.Equal(t, 3, c.Len())
	require.Equal(t, 2, c.CountOf(NotImplemented))
	require.Zero(t, c.CountOf(Error))

	items := c.Notifications()
	items[0].Type = Error
	require.Equal(t, NotImplemented, c.Notifications()[0].Type)

	c.Reset()
	require.Zero(t, c.Len())
}

func TestNotifierFunc(t *testing.T) {
	var got []Notification
	var n Notifier = NotifierFunc(func(n Notification) { got = append(got, n) })

	n.Notify(Notification{Message: "a"})
	require.Equal(t, []Notification{{Message: "a"}}, got)
}
