package email

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carfinder/site/vehicle"
)

func TestInquiryLink(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  vehicle.Vehicle
		expected string
	}{
		{
			name:     "simple",
			vehicle:  vehicle.Vehicle{Make: "Toyota", Model: "Camry", Year: 2022},
			expected: "mailto:sales@carfinder.com?subject=Inquiry%20about%202022%20Toyota%20Camry",
		},
		{
			name:     "model with space",
			vehicle:  vehicle.Vehicle{Make: "Tesla", Model: "Model 3", Year: 2023},
			expected: "mailto:sales@carfinder.com?subject=Inquiry%20about%202023%20Tesla%20Model%203",
		},
		{
			name:     "reserved characters are escaped",
			vehicle:  vehicle.Vehicle{Make: "A&B", Model: "X+Y?", Year: 2020},
			expected: "mailto:sales@carfinder.com?subject=Inquiry%20about%202020%20A%26B%20X%2BY%3F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InquiryLink("sales@carfinder.com", tt.vehicle))
		})
	}
}

func TestInquiryLinkParses(t *testing.T) {
	v := vehicle.Vehicle{Make: "BMW", Model: "i4", Year: 2023}

	u, err := url.Parse(InquiryLink("sales@carfinder.com", v))
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "sales@carfinder.com", u.Opaque)
	assert.Equal(t, "Inquiry about 2023 BMW i4", u.Query().Get("subject"))
}
