package calculator

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// 基于切片的任务分配
// 沿 x 方向把网格划分为若干连续切片（slab），每个任务只写自己范围内的点，
// 因此任意 worker 数得到的结果完全相同。workers == 1 时在当前 goroutine 中顺序执行。
type executor struct {
	workers int
}

type task struct {
	start int
	end   int
}

type ExecOption func(e *executor)

// Workers 设置并发计算的 worker 数，小于 1 时按 1 处理
func Workers(n int) ExecOption {
	return func(e *executor) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

func newExecutor(opts ...ExecOption) *executor {
	e := &executor{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// split 将 [0, total) 划分为任务：每个 worker 先分到 taskLen 个切片，余数逐个切片分配
func (e *executor) split(total int) []task {
	if total <= 0 {
		return nil
	}
	taskLen, remainder := total/e.workers, total%e.workers
	tasks := make([]task, 0, e.workers+remainder)
	start := 0
	if taskLen > 0 {
		for start < total-remainder {
			tasks = append(tasks, task{start: start, end: start + taskLen})
			start += taskLen
		}
	}
	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}

// dispatchTask 执行全部任务并返回耗时，遇到第一个错误即返回
func (e *executor) dispatchTask(total int, f func(t task) error) (time.Duration, error) {
	start := time.Now()
	tasks := e.split(total)
	if e.workers == 1 {
		for _, t := range tasks {
			if err := f(t); err != nil {
				return time.Since(start), err
			}
		}
		return time.Since(start), nil
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			return f(t)
		})
	}
	err := g.Wait()
	return time.Since(start), err
}
