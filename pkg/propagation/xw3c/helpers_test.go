package xw3c_test

import (
	"sync"
)

// =============================================================================
// 测试共用：诊断记录器
// =============================================================================

// diagRecord 一条被记录的诊断。
type diagRecord struct {
	msg    string
	offset int
	cause  error
}

// recordingDiag 把诊断收进切片，供断言消息模板与偏移量。
// 并发测试也会用到，加锁保护。
type recordingDiag struct {
	mu      sync.Mutex
	records []diagRecord
}

func (d *recordingDiag) Report(msg string, offset int, cause error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = append(d.records, diagRecord{msg: msg, offset: offset, cause: cause})
}

func (d *recordingDiag) all() []diagRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]diagRecord, len(d.records))
	copy(out, d.records)
	return out
}

func (d *recordingDiag) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// 测试共用的合法样例，与线上抓到的真实头部同构。
const (
	testTraceID   = "00000000000000090000000000000001"
	testSpanID    = "0000000000000003"
	testUnsampled = "00-" + testTraceID + "-" + testSpanID + "-00"
	testSampled   = "00-" + testTraceID + "-" + testSpanID + "-01"
)
