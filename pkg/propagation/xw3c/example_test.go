package xw3c_test

import (
	"fmt"
	"net/http"

	"github.com/WillTong/brave/pkg/propagation/xcarrier"
	"github.com/WillTong/brave/pkg/propagation/xprop"
	"github.com/WillTong/brave/pkg/propagation/xw3c"
)

func ExampleParentFormat_Write() {
	f := xw3c.NewParentFormat(nil)
	c := xprop.TraceContext{
		TraceIDHigh: 0x0af7651916cd43dd,
		TraceIDLow:  0x8448eb211c80319c,
		SpanID:      0xb7ad6b7169203331,
		Sampling:    xprop.SamplingAccept,
	}
	fmt.Println(f.Write(c))
	// Output:
	// 00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01
}

func ExampleExtractor_Extract() {
	prop := xw3c.New()
	extractor := xw3c.NewExtractor(prop, xcarrier.HeaderCarrier{})

	h := http.Header{}
	h.Set("tracestate", "congo=t61rcWkgMzE,b3=00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01")

	result := extractor.Extract(h)
	c, _ := result.Context()
	fmt.Println("kind:", result.Kind())
	fmt.Println("trace:", c.TraceIDHex())
	fmt.Println("span:", c.SpanIDHex())
	fmt.Println("other:", result.OtherState())
	// Output:
	// kind: context
	// trace: 0af7651916cd43dd8448eb211c80319c
	// span: b7ad6b7169203331
	// other: congo=t61rcWkgMzE
}

func ExampleInjector_Inject() {
	prop := xw3c.New()
	injector := xw3c.NewInjector(prop, xcarrier.HeaderCarrier{})

	h := http.Header{}
	c := xprop.TraceContext{
		TraceIDHigh: 0x0af7651916cd43dd,
		TraceIDLow:  0x8448eb211c80319c,
		SpanID:      0xb7ad6b7169203331,
		Sampling:    xprop.SamplingDeny,
	}
	injector.Inject(c, "congo=t61rcWkgMzE", h)

	fmt.Println(h.Get("traceparent"))
	fmt.Println(h.Get("tracestate"))
	// Output:
	// 00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-00
	// b3=00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-00,congo=t61rcWkgMzE
}
