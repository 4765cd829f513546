/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sample includes samplers for drawing random values
// from uniform and normal probability distributions, together with
// helpers for shuffling and sampling without replacement.
//
// All draws consume an explicit *Generator. A Generator is either
// seeded (reproducible: NewSeeded, NewKeyed) or time-seeded
// (non-reproducible: NewTimeSeeded). Passing a nil *Generator selects
// the process-wide generator returned by Default, which is seeded with 0.
//
// Package sample provides the Sampler interface along with
// implementations for integer, real and Gaussian values. Samplers can
// be used, for instance, to fill vectors with the desired random data.
//
// Every argument error wraps ErrInvalidArgument and can be matched
// with errors.Is.
package sample
